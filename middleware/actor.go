package middleware

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/blogem/table-admin/userctx"
)

// ActorHeader names the caller recorded in audit entries
const ActorHeader = "X-Actor"

// maxActorLength matches the width, in characters, of the audit table's who column
const maxActorLength = 64

// Actor middleware attributes mutations to the caller named in the X-Actor header.
// Requests without the header fall back to the configured default actor.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := truncateActor(strings.TrimSpace(strings.ToValidUTF8(r.Header.Get(ActorHeader), "")))
		if actor != "" {
			r = r.WithContext(userctx.SetActor(r.Context(), actor))
		}

		next.ServeHTTP(w, r)
	})
}

// truncateActor cuts on rune boundaries so the result stays valid UTF-8
func truncateActor(actor string) string {
	if utf8.RuneCountInString(actor) <= maxActorLength {
		return actor
	}
	return string([]rune(actor)[:maxActorLength])
}
