package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/connect"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/models"
)

// DigitalIDService issues travel-document records. Identifiers are
// generated server-side and paired with an HMAC-signed credential token,
// so a display id can be verified without trusting the client.
type DigitalIDService struct {
	digitalIDRepo models.DigitalIDRepo
	signingKey    []byte
}

type credentialClaims struct {
	DisplayID string `json:"display_id"`
	jwt.RegisteredClaims
}

func NewDigitalIDService(digitalIDRepo models.DigitalIDRepo, signingKey string) *DigitalIDService {
	return &DigitalIDService{
		digitalIDRepo: digitalIDRepo,
		signingKey:    []byte(signingKey),
	}
}

func (ds *DigitalIDService) signCredential(displayId string, userId uuid.UUID, issuedAt time.Time) (string, error) {
	claims := credentialClaims{
		DisplayID: displayId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userId.String(),
			Issuer:   "yatra-api",
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ds.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign credential: %v", err)
	}
	return signed, nil
}

// IssueDigitalID creates and persists a digital id for an authenticated
// user. A user holds at most one record; re-issuing replaces it.
func (ds *DigitalIDService) IssueDigitalID(ctx context.Context, userId uuid.UUID, record *models.DigitalID, accessToken string) (*models.DigitalID, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	record.UserID = userId
	record.FullName = strings.TrimSpace(record.FullName)
	record.IDNumber = strings.TrimSpace(record.IDNumber)

	if err := models.Validate.Struct(record); err != nil {
		return nil, fmt.Errorf("invalid digital id data: %v", err)
	}

	existing, err := ds.digitalIDRepo.GetDigitalIDByUser(ctx, userId, accessToken)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := ds.digitalIDRepo.DeleteDigitalID(ctx, userId, accessToken); err != nil {
			return nil, fmt.Errorf("failed to replace existing digital id: %v", err)
		}
	}

	now := time.Now()
	displayId, err := models.GenerateDisplayID(now)
	if err != nil {
		return nil, err
	}

	credential, err := ds.signCredential(displayId, userId, now)
	if err != nil {
		return nil, err
	}

	// Photo arrives as a data URL from the form; store it in Cloudinary
	if record.PhotoURL != "" && strings.HasPrefix(record.PhotoURL, "data:") {
		urls, err := helpers.UploadImages(ctx, connect.Cld, []string{record.PhotoURL}, helpers.DigitalIDFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %v", err)
		}
		if len(urls) > 0 {
			record.PhotoURL = urls[0]
		}
	}

	record.ID = uuid.New()
	record.DisplayID = displayId
	record.CredentialToken = credential
	record.IssuedAt = now
	record.CreatedAt = now
	record.UpdatedAt = now

	return ds.digitalIDRepo.CreateDigitalID(ctx, record, accessToken)
}

func (ds *DigitalIDService) GetDigitalID(ctx context.Context, userId uuid.UUID, accessToken string) (*models.DigitalID, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return ds.digitalIDRepo.GetDigitalIDByUser(ctx, userId, accessToken)
}

func (ds *DigitalIDService) DeleteDigitalID(ctx context.Context, userId uuid.UUID, accessToken string) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}

	return ds.digitalIDRepo.DeleteDigitalID(ctx, userId, accessToken)
}

// VerifyDigitalID checks that a display id is well-formed, exists, and that
// its stored credential token carries a valid signature over the same id.
func (ds *DigitalIDService) VerifyDigitalID(ctx context.Context, displayId string) (*models.DigitalID, error) {
	if !models.IsValidDisplayID(displayId) {
		return nil, fmt.Errorf("invalid digital id format")
	}

	record, err := ds.digitalIDRepo.GetDigitalIDByDisplayID(ctx, displayId)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("digital id not found")
	}

	claims := &credentialClaims{}
	token, err := jwt.ParseWithClaims(record.CredentialToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ds.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("credential verification failed: %v", err)
	}
	if !token.Valid || claims.DisplayID != displayId {
		return nil, fmt.Errorf("credential does not match digital id")
	}

	return record, nil
}
