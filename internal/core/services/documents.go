package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

// Document keys shared by every device.
const (
	keyRegisteredUsers = "registeredUsers"
	keyCities          = "cities"
	keyCMData          = "cmData"
	keyParts           = "parts"
	keyServiceRecords  = "umVehiclesData"
	keyDrafts          = "maintenanceDrafts"
)

// Document keys scoped to one device.
const (
	keyCurrentUser = "currentUser"
	keyRememberMe  = "rememberMe"
	keyUserEmail   = "userEmail"
)

func deviceKey(deviceID, key string) string {
	return "device:" + deviceID + ":" + key
}

// loadDocument decodes the document under key into v. found is false when the key is absent.
func loadDocument(ctx context.Context, store ports.DocumentStore, key string, v interface{}) (found bool, err error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func saveDocument(ctx context.Context, store ports.DocumentStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
