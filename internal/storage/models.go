// Package storage provides database operations and data models.
package storage

import (
	"crypto/rand"
	"database/sql"
	"math/big"
	"time"

	"github.com/user/githookbot/internal/relay"
)

// Webhook represents one registered relay route. URL is the opaque
// identifier minted at registration time; Name is the human label, unique
// per owner.
type Webhook struct {
	ID        int64          `db:"id"`
	Name      string         `db:"webhook_name"`
	URL       string         `db:"url"`
	AuthorID  int64          `db:"author_id"`
	ChannelID int64          `db:"channel_id"`
	ThreadID  sql.NullInt64  `db:"thread_id"`
	Secret    sql.NullString `db:"secret"` // reserved for signature verification
	CreatedAt time.Time      `db:"created_at"`
}

// Destination returns the delivery destination for this webhook. A NULL
// thread_id maps to the zero sentinel (top-level chat).
func (w *Webhook) Destination() relay.Destination {
	dest := relay.Destination{ChatID: w.ChannelID}
	if w.ThreadID.Valid {
		dest.ThreadID = w.ThreadID.Int64
	}
	return dest
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// idLength matches the 20-letter identifiers minted by earlier versions,
// so existing GitHub webhook configurations keep working.
const idLength = 20

// GenerateID mints a new opaque webhook identifier.
func GenerateID() (string, error) {
	buf := make([]byte, idLength)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return string(buf), nil
}
