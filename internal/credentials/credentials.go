// Package credentials acquires the player id and Steam API key for a run.
package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leighmacdonald/steamid/v2/steamid"
)

// ErrEmptyAPIKey is returned when no API key was supplied.
var ErrEmptyAPIKey = errors.New("steam API key must not be empty")

// ErrInvalidSteamID is returned when the player id is not a valid SteamID64.
var ErrInvalidSteamID = errors.New("invalid SteamID64")

const (
	promptSteamID = "Enter the user's SteamID64: "
	promptAPIKey  = "Enter your Steam API key: "
)

// Credentials identifies the player and authorises the API calls.
type Credentials struct {
	SteamID steamid.SID64
	APIKey  string
}

// Resolve takes the credentials from args when exactly two positional
// arguments are given, and otherwise prompts for both on out, reading answers
// from in.
//
// Postcondition: Returns valid Credentials or a non-nil error.
func Resolve(args []string, in io.Reader, out io.Writer) (Credentials, error) {
	if len(args) == 2 {
		return parse(args[0], args[1])
	}

	scanner := bufio.NewScanner(in)
	id, err := ask(scanner, out, promptSteamID)
	if err != nil {
		return Credentials{}, err
	}
	key, err := ask(scanner, out, promptAPIKey)
	if err != nil {
		return Credentials{}, err
	}
	return parse(id, key)
}

func ask(scanner *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func parse(rawID, rawKey string) (Credentials, error) {
	rawID = strings.TrimSpace(rawID)
	sid, err := steamid.SID64FromString(rawID)
	if err != nil || !sid.Valid() {
		return Credentials{}, fmt.Errorf("%w: %q", ErrInvalidSteamID, rawID)
	}
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return Credentials{}, ErrEmptyAPIKey
	}
	return Credentials{SteamID: sid, APIKey: key}, nil
}
