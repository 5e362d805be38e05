package installer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReturnCode(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		wantErr error
	}{
		{name: "positive", input: 1638},
		{name: "negative", input: -2147023838},
		{name: "min int32", input: math.MinInt32},
		{name: "max uint32", input: math.MaxUint32},
		{name: "zero is reserved", input: 0, wantErr: ErrReturnCodeZero},
		{name: "below range", input: math.MinInt32 - 1, wantErr: ErrReturnCodeRange},
		{name: "above range", input: math.MaxUint32 + 1, wantErr: ErrReturnCodeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := NewReturnCode(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ReturnCode(tt.input), code)
			}
		})
	}
}

func TestParseReturnResponse(t *testing.T) {
	valid := []string{
		"packageInUse", "packageInUseByApplication", "installInProgress", "fileInUse",
		"missingDependency", "diskFull", "insufficientMemory", "invalidParameter",
		"noNetwork", "contactSupport", "rebootRequiredToFinish", "rebootRequiredForInstall",
		"rebootInitiated", "cancelledByUser", "alreadyInstalled", "downgrade",
		"blockedByPolicy", "systemNotSupported", "custom",
	}
	for _, input := range valid {
		parsed, err := ParseReturnResponse(input)
		assert.NoError(t, err, input)
		assert.Equal(t, ReturnResponse(input), parsed)
	}

	_, err := ParseReturnResponse("PackageInUse")
	assert.ErrorIs(t, err, ErrUnknownReturnResponse)
	_, err = ParseReturnResponse("")
	assert.ErrorIs(t, err, ErrUnknownReturnResponse)
}
