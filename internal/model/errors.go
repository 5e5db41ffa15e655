package model

import (
	"bytes"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument marks input of the wrong shape, e.g. a team option
	// that is neither a name nor a list of names.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks names that do not occur in the data being filtered.
	ErrNotFound = errors.New("not found")
)

// TeamSet is the team option as it arrives from loosely typed input:
// either a single name or a list of names.
type TeamSet []string

// UnmarshalJSON accepts a JSON string or an array of strings.
func (t *TeamSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	var one string
	if err := sonic.Unmarshal(data, &one); err == nil {
		*t = TeamSet{one}
		return nil
	}
	var many []string
	if err := sonic.Unmarshal(data, &many); err != nil {
		return errors.Wrap(ErrInvalidArgument, "teams should be a string or a list of strings")
	}
	*t = many
	return nil
}
