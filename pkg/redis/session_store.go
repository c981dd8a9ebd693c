package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

const sessionKeyPrefix = "session:"

var (
	ErrInvalidEncryptionKey = errors.New("encryption key must be 32 bytes (64 hex chars)")
	ErrSessionNotFound      = errors.New("session not found")
)

// SessionData holds the tokens issued for a session-based sign-in
type SessionData struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SessionStore keeps AES-GCM encrypted sessions in Redis
type SessionStore struct {
	encryptionKey []byte
}

var (
	setSessionValue    = Set
	getSessionValue    = Get
	delSessionValue    = Del
	marshalSessionJSON = json.Marshal
	nonceReader        = rand.Reader
)

// NewSessionStore creates a session store from a hex encoded 256-bit key
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, ErrInvalidEncryptionKey
	}
	return &SessionStore{encryptionKey: key}, nil
}

// CreateSession stores encrypted session data in Redis
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	jsonData, err := marshalSessionJSON(data)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, sessionKeyPrefix+sessionID, encryptedData, expiration)
}

// GetSession retrieves and decrypts session data from Redis
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	encrypted, err := getSessionValue(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, ErrNil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	decrypted, err := s.decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(decrypted, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// DeleteSession removes a session from Redis
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, sessionKeyPrefix+sessionID)
}

func (s *SessionStore) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(nonceReader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *SessionStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
