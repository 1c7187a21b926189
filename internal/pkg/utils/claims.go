package utils

import (
	"clinicbook-service/internal/app/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var errMalformedToken = errors.New("token is not a jwt")

// DecodeClaims reads identity claims from an access token without verifying
// its signature. The token is trusted because it came from the scheduling api
// over TLS; the backend re-verifies it on every call.
func DecodeClaims(accessToken string) (*models.Claims, error) {
	if strings.Count(accessToken, ".") != 2 {
		return nil, errMalformedToken
	}

	mapClaims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, mapClaims)
	if err != nil {
		return nil, err
	}

	claims := &models.Claims{
		UserID: claimString(mapClaims, "user_id"),
		Role:   claimString(mapClaims, "role"),
		Email:  claimString(mapClaims, "email"),
		Name:   claimString(mapClaims, "name"),
	}
	if claims.UserID == "" {
		claims.UserID = claimString(mapClaims, "sub")
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return claims, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	switch value := claims[key].(type) {
	case string:
		return value
	case float64:
		return fmt.Sprintf("%.0f", value)
	}
	return ""
}
