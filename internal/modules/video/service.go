package video

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed validity window of a join token. Expiry is
// embedded in the signed token itself, there is no runtime timer.
const TokenTTL = time.Hour

const channelPrefix = "mentor-session-"

const RolePublisher = "publisher"

// Issuer mints channel names and signed join tokens for the video
// provider. Construction fails when the signing credentials are absent,
// so a misconfigured deployment dies at startup rather than at the
// first booking.
type Issuer struct {
	appID string
	cert  []byte

	// now is swappable for tests.
	now func() time.Time
}

func NewIssuer(appID, certificate string) (*Issuer, error) {
	if strings.TrimSpace(appID) == "" || strings.TrimSpace(certificate) == "" {
		return nil, ErrMissingCredentials
	}
	return &Issuer{
		appID: appID,
		cert:  []byte(certificate),
		now:   time.Now,
	}, nil
}

func (i *Issuer) AppID() string { return i.appID }

// Credentials carry everything a client needs to join a room.
type Credentials struct {
	Channel string `json:"channel"`
	Token   string `json:"token"`
	AppID   string `json:"app_id"`
}

// ChannelFor derives the channel name deterministically from a meeting
// identifier: characters outside [A-Za-z0-9_-] are dropped, and the
// result is prefixed. The same identifier always yields the same
// channel, which is what lets two parties to a booking meet in one
// room.
func (i *Issuer) ChannelFor(meetingID string) (string, error) {
	meetingID = strings.TrimSpace(meetingID)
	if meetingID == "" {
		return "", ErrEmptyMeetingID
	}

	var b strings.Builder
	for _, r := range meetingID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyMeetingID
	}

	return channelPrefix + b.String(), nil
}

type tokenClaims struct {
	Channel string `json:"channel"`
	UID     int64  `json:"uid"`
	Role    string `json:"role"`
	jwtlib.RegisteredClaims
}

// TokenFor signs a publisher-scoped join token for an existing channel,
// valid for TokenTTL from issuance.
func (i *Issuer) TokenFor(channel string, uid int64) (string, error) {
	if strings.TrimSpace(channel) == "" {
		return "", ErrEmptyChannel
	}

	now := i.now()
	claims := tokenClaims{
		Channel: channel,
		UID:     uid,
		Role:    RolePublisher,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.appID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(i.cert)
}

// Credentials derives the channel for a meeting identifier and signs a
// token for it in one step.
func (i *Issuer) Credentials(meetingID string, uid int64) (*Credentials, error) {
	channel, err := i.ChannelFor(meetingID)
	if err != nil {
		return nil, err
	}

	token, err := i.TokenFor(channel, uid)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		Channel: channel,
		Token:   token,
		AppID:   i.appID,
	}, nil
}
