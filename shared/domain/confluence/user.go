package confluence

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/itchan-dev/confluence-bridge/shared/logger"
)

// Unassigned is the display name of a user the upstream payload did not name.
const Unassigned = "Unassigned"

// SimplifiedUserKeys lists the keys of User.ToSimplifiedDict in output order.
var SimplifiedUserKeys = []string{"display_name", "username", "email", "profile_picture"}

// User is a Confluence user normalized across cloud and server payloads.
// Cloud identifies users by AccountID, server/data center by Username.
type User struct {
	AccountID      *string
	Username       *string
	DisplayName    string
	Email          *string
	ProfilePicture *string
	IsActive       bool
	Locale         *string
}

// DefaultUser is the record produced for an empty payload.
func DefaultUser() User {
	return User{DisplayName: Unassigned, IsActive: true}
}

// NewUserFromAPI maps a raw user object from the Confluence REST API.
// It never fails: missing or malformed fields end up nil or at their default.
func NewUserFromAPI(data Raw) User {
	if len(data) == 0 {
		return DefaultUser()
	}

	logger.Log.Debug("confluence user payload", "keys", sortedKeys(data))

	var profilePicture *string
	if pic := objectField(data, "profilePicture"); len(pic) > 0 {
		profilePicture = stringField(pic, "path")
	}

	displayName := Unassigned
	if name, ok := data["displayName"].(string); ok {
		displayName = name
	}

	return User{
		AccountID:      stringField(data, "accountId"),
		Username:       resolveUsername(data),
		DisplayName:    displayName,
		Email:          resolveEmail(data),
		ProfilePicture: profilePicture,
		// Server payloads usually carry no accountStatus, so they come out inactive.
		IsActive: data["accountStatus"] == "active",
		Locale:   stringField(data, "locale"),
	}
}

// DecodeUser maps a raw JSON user object. A JSON null yields DefaultUser.
func DecodeUser(b []byte) (User, error) {
	data, err := decodeRaw(b)
	if err != nil {
		return DefaultUser(), fmt.Errorf("decode confluence user: %w", err)
	}
	return NewUserFromAPI(data), nil
}

func resolveUsername(data Raw) *string {
	if username := nonEmptyString(data, "username"); username != nil {
		return username
	}
	return nonEmptyString(data, "name")
}

// resolveEmail prefers the cloud "email" field, then the server "emailAddress"
// field, and finally a raw username that looks like an address.
func resolveEmail(data Raw) *string {
	if email := nonEmptyString(data, "email"); email != nil {
		return email
	}
	if email := nonEmptyString(data, "emailAddress"); email != nil {
		return email
	}
	if username, ok := data["username"].(string); ok && strings.Contains(username, "@") {
		return &username
	}
	return nil
}

// ToSimplifiedDict returns the public view of the user. AccountID, IsActive and
// Locale are left out.
func (u User) ToSimplifiedDict() map[string]any {
	return map[string]any{
		"display_name":    u.DisplayName,
		"username":        optional(u.Username),
		"email":           optional(u.Email),
		"profile_picture": optional(u.ProfilePicture),
	}
}

// Name returns the display name.
//
// Deprecated: use DisplayName. Every call logs a warning.
func (u User) Name() string {
	attrs := []any{"replacement", "DisplayName"}
	if _, file, line, ok := runtime.Caller(1); ok {
		attrs = append(attrs, "caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	logger.Log.Warn("User.Name is deprecated", attrs...)
	return u.DisplayName
}
