package cart

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionKey = "cart"

// SessionStore keeps each browser session's cart in the Fiber session,
// serialized as JSON so the entry order survives the round trip.
type SessionStore struct {
	sessions *session.Store
}

func NewSessionStore(sessions *session.Store) *SessionStore {
	return &SessionStore{sessions: sessions}
}

// Get loads the cart for the current session, creating an empty one on first
// access. A cart that fails to decode is treated as empty.
func (s *SessionStore) Get(c *fiber.Ctx) (*Cart, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return nil, err
	}

	cart := New()
	if raw, ok := sess.Get(sessionKey).(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), cart); err != nil {
			cart = New()
		}
	}
	return cart, nil
}

// Put writes the cart back into the session immediately; every mutation goes
// through here, there is no batching.
func (s *SessionStore) Put(c *fiber.Ctx, cart *Cart) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	sess.Set(sessionKey, string(raw))
	return sess.Save()
}

// Clear empties the session cart (used on login and after checkout).
func (s *SessionStore) Clear(c *fiber.Ctx) error {
	return s.Put(c, New())
}
