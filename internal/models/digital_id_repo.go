package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type DigitalIDRepo interface {
	CreateDigitalID(ctx context.Context, record *DigitalID, accessToken string) (*DigitalID, error)
	GetDigitalIDByUser(ctx context.Context, userId uuid.UUID, accessToken string) (*DigitalID, error)
	GetDigitalIDByDisplayID(ctx context.Context, displayId string) (*DigitalID, error)
	DeleteDigitalID(ctx context.Context, userId uuid.UUID, accessToken string) error
}

func (su *SupabaseRepo) CreateDigitalID(ctx context.Context, record *DigitalID, accessToken string) (*DigitalID, error) {
	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	data, count, err := client.
		From(DigitalIDTable).
		Insert(record, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create digital id: %v", err)
	}

	var created []DigitalID
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal digital id rows: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no digital id data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetDigitalIDByUser(ctx context.Context, userId uuid.UUID, accessToken string) (*DigitalID, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	data, _, err := client.
		From(DigitalIDTable).
		Select("*", "", false).
		Eq("user_id", userId.String()).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get digital id: %v", err)
	}

	var records []DigitalID
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal digital id rows: %v", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

func (su *SupabaseRepo) GetDigitalIDByDisplayID(ctx context.Context, displayId string) (*DigitalID, error) {
	if !IsValidDisplayID(displayId) {
		return nil, fmt.Errorf("invalid digital id format")
	}

	data, _, err := su.supabaseClient.
		From(DigitalIDTable).
		Select("*", "", false).
		Eq("display_id", displayId).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to look up digital id: %v", err)
	}

	var records []DigitalID
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal digital id rows: %v", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

func (su *SupabaseRepo) DeleteDigitalID(ctx context.Context, userId uuid.UUID, accessToken string) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid UUID")
	}

	client := su.supabaseClient
	if accessToken != "" {
		authClient, err := su.GetAuthenticatedClient(accessToken)
		if err != nil {
			return fmt.Errorf("failed to create authenticated client: %v", err)
		}
		client = authClient
	}

	_, count, err := client.
		From(DigitalIDTable).
		Delete("", "exact").
		Eq("user_id", userId.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete digital id: %v", err)
	}

	if count == 0 {
		return fmt.Errorf("no digital id found to delete")
	}

	return nil
}
