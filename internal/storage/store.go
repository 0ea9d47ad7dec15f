package storage

import (
	"encoding/json"
	"reflect"
)

// Keys for the persisted directory collections.
const (
	KeyAccounts     = "accounts"
	KeyAppointments = "appointments"
	KeyReports      = "reports"
	KeyAudit        = "audit"
)

// Store persists JSON-serializable collections under string keys. Failures
// never reach the caller: Load reports a miss through its return value and
// Save logs and swallows errors, leaving prior stored state untouched.
type Store interface {
	// Load decodes the value stored under key into out. On a missing key,
	// an IO failure, or undecodable data it leaves out at its fallback
	// value and returns false.
	Load(key string, out interface{}) bool

	// Save marshals v and stores it under key.
	Save(key string, v interface{})
}

// decodeInto unmarshals data into out without touching out on failure.
// A stale stored shape must not leave the caller's fallback half-filled.
func decodeInto(data []byte, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &json.InvalidUnmarshalError{Type: reflect.TypeOf(out)}
	}

	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return err
	}

	rv.Elem().Set(tmp.Elem())
	return nil
}
