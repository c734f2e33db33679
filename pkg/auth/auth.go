package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/logger"
)

var (
	clientConfigs = make(map[string]config.ClientConfig)
	algorithm     = "HS256"
	authMutex     sync.RWMutex
)

// InitAuth loads the HMAC clients allowed to call the sandbox into memory
func InitAuth(authConfig config.AuthConfig) error {
	authMutex.Lock()
	defer authMutex.Unlock()

	clientConfigs = make(map[string]config.ClientConfig)
	if authConfig.Algorithm != "" {
		if jwt.GetSigningMethod(authConfig.Algorithm) == nil {
			return fmt.Errorf("unsupported signing algorithm %q", authConfig.Algorithm)
		}
		algorithm = authConfig.Algorithm
	}

	if !authConfig.Enabled {
		logger.Info().Msg("Auth disabled in config")
		return nil
	}

	loadedCount := 0
	for _, clientConfig := range authConfig.Clients {
		if !clientConfig.Active {
			logger.Info().
				Str("client_id", clientConfig.ClientID).
				Str("client_name", clientConfig.ClientName).
				Msg("Skipping inactive client")
			continue
		}

		if clientConfig.SecretKey == "" {
			return fmt.Errorf("client %s (%s) missing secret_key",
				clientConfig.ClientID, clientConfig.ClientName)
		}

		clientConfigs[clientConfig.ClientID] = clientConfig
		loadedCount++
	}

	logger.Info().
		Int("loaded_clients", loadedCount).
		Int("total_clients", len(authConfig.Clients)).
		Str("algorithm", algorithm).
		Msg("Auth system initialized")

	return nil
}

// IssueToken signs a bearer token for a client
func IssueToken(clientID, secretKey string, ttl time.Duration, now time.Time) (string, error) {
	if clientID == "" || secretKey == "" {
		return "", fmt.Errorf("client id and secret key are required")
	}

	authMutex.RLock()
	method := jwt.GetSigningMethod(algorithm)
	authMutex.RUnlock()

	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-30 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyJWT verifies a bearer token against the registered clients and returns its claims
func VerifyJWT(tokenString string) (*Claims, error) {
	// Parse without verification first to learn which client's secret to use
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	unverified, ok := token.Claims.(*Claims)
	if !ok || unverified.ClientID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	clientConfig, exists := GetClientInfo(unverified.ClientID)
	if !exists {
		return nil, fmt.Errorf("unknown client_id: %s", unverified.ClientID)
	}

	authMutex.RLock()
	expectedAlg := algorithm
	authMutex.RUnlock()

	verified := &Claims{}
	token, err = jwt.ParseWithClaims(tokenString, verified, func(token *jwt.Token) (interface{}, error) {
		return []byte(clientConfig.SecretKey), nil
	}, jwt.WithValidMethods([]string{expectedAlg}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return verified, nil
}

// GetClientInfo returns the config of an active registered client
func GetClientInfo(clientID string) (config.ClientConfig, bool) {
	authMutex.RLock()
	defer authMutex.RUnlock()

	clientConfig, exists := clientConfigs[clientID]
	return clientConfig, exists
}

// Clients returns every registered client
func Clients() []config.ClientConfig {
	authMutex.RLock()
	defer authMutex.RUnlock()

	out := make([]config.ClientConfig, 0, len(clientConfigs))
	for _, c := range clientConfigs {
		out = append(out, c)
	}
	return out
}
