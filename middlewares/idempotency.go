package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"invoiceflow-backend/database"
	"invoiceflow-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const idempotencyPrefix = "invoiceflow-idempotency:"

// guards the KV read-modify-write around a single key lookup/store
var idemMu sync.Mutex

// Idempotency processes Idempotency-Key for mutating HTTP methods. The
// first completed response for a key is stored in the substrate and
// replayed on retries; reusing a key with a different request is a 409.
func Idempotency(kv database.KV) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get("Idempotency-Key"))
		if key == "" {
			return c.Next()
		}
		if len(key) > 128 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Idempotency-Key too long"})
		}

		path := c.OriginalURL() // includes query string
		body := c.Body()

		// Deterministic request hash: method|path|body
		h := sha256.New()
		h.Write([]byte(method))
		h.Write([]byte{'\n'})
		h.Write([]byte(path))
		h.Write([]byte{'\n'})
		h.Write(body)
		reqHash := hex.EncodeToString(h.Sum(nil))

		slot := idempotencyPrefix + key

		idemMu.Lock()
		raw, ok, err := kv.Get(slot)
		if err != nil {
			idemMu.Unlock()
			return fiber.NewError(fiber.StatusInternalServerError, "idempotency lookup failed")
		}
		if ok {
			var rec models.IdempotencyRecord
			if json.Unmarshal([]byte(raw), &rec) == nil {
				if rec.RequestHash != reqHash {
					idemMu.Unlock()
					return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
				}
				if rec.ResponseStatus != 0 && rec.ResponseBody != nil {
					idemMu.Unlock()
					c.Status(rec.ResponseStatus)
					return c.Send(rec.ResponseBody)
				}
			}
			// pending or unreadable: let the request run
		} else {
			rec := models.IdempotencyRecord{
				ID:          uuid.NewString(),
				Key:         key,
				RequestHash: reqHash,
				Method:      method,
				Path:        path,
				CreatedAt:   time.Now().UTC(),
			}
			if b, err := json.Marshal(rec); err == nil {
				_ = kv.Set(slot, string(b))
			}
		}
		idemMu.Unlock()

		if err := c.Next(); err != nil {
			return err
		}

		// Store the completed response, best effort.
		idemMu.Lock()
		defer idemMu.Unlock()
		raw, ok, err = kv.Get(slot)
		if err != nil || !ok {
			return nil
		}
		var rec models.IdempotencyRecord
		if json.Unmarshal([]byte(raw), &rec) != nil {
			return nil
		}
		now := time.Now().UTC()
		rec.ResponseStatus = c.Response().StatusCode()
		resp := c.Response().Body()
		rec.ResponseBody = make([]byte, len(resp))
		copy(rec.ResponseBody, resp)
		rec.CompletedAt = &now
		if b, err := json.Marshal(rec); err == nil {
			_ = kv.Set(slot, string(b))
		}
		return nil
	}
}
