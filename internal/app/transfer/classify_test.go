package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"susos-migrate/internal/app/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		account         model.LegacyAccount
		expectedNumber  int
		expectedVerdict Verdict
	}{
		{
			name:            "gewis_account_above_reserved_block",
			account:         model.LegacyAccount{ID: 42, Label: "g2500"},
			expectedNumber:  2500,
			expectedVerdict: Valid,
		},
		{
			name:            "external_account_low_number_is_valid",
			account:         model.LegacyAccount{ID: 7, Label: "e7"},
			expectedNumber:  7,
			expectedVerdict: Valid,
		},
		{
			name:            "gewis_account_in_reserved_block",
			account:         model.LegacyAccount{ID: 3, Label: "g42"},
			expectedVerdict: ExcludedReservedGewis,
		},
		{
			name:            "gewis_boundary_1000_is_valid",
			account:         model.LegacyAccount{ID: 4, Label: "g1000"},
			expectedNumber:  1000,
			expectedVerdict: Valid,
		},
		{
			name:            "gewis_boundary_999_is_reserved",
			account:         model.LegacyAccount{ID: 5, Label: "g999"},
			expectedVerdict: ExcludedReservedGewis,
		},
		{
			name:            "sentinel_account",
			account:         model.LegacyAccount{ID: 9, Label: "gOUDESANNEVANDERLINDEN"},
			expectedVerdict: ExcludedSentinel,
		},
		{
			name:            "non_numeric_account_number",
			account:         model.LegacyAccount{ID: 11, Label: "gBESTUUR"},
			expectedVerdict: Malformed,
		},
		{
			name:            "empty_label",
			account:         model.LegacyAccount{ID: 12, Label: ""},
			expectedVerdict: Malformed,
		},
		{
			name:            "tag_only_label",
			account:         model.LegacyAccount{ID: 13, Label: "g"},
			expectedVerdict: Malformed,
		},
		{
			name:            "unknown_type_tag",
			account:         model.LegacyAccount{ID: 14, Label: "x123"},
			expectedVerdict: ExcludedUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, verdict := Classify(tt.account)

			assert.Equal(t, tt.expectedVerdict, verdict)
			if tt.expectedVerdict == Valid {
				assert.Equal(t, tt.expectedNumber, number)
			}
		})
	}
}

func TestAccountKindDecoding(t *testing.T) {
	assert.Equal(t, model.KindGewis, model.LegacyAccount{Label: "g2500"}.Kind())
	assert.Equal(t, model.KindExternal, model.LegacyAccount{Label: "e7"}.Kind())
	assert.Equal(t, model.KindUnknown, model.LegacyAccount{Label: "x7"}.Kind())
	assert.Equal(t, model.KindUnknown, model.LegacyAccount{Label: ""}.Kind())
	assert.Equal(t, "2500", model.LegacyAccount{Label: "g2500"}.Number())
}
