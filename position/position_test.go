package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     At(3, 4),
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     At(7, 7),
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     At(0, 0),
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.notation, got.Notation())
		})
	}
}

func TestIsInBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sq   Square
		want bool
	}{
		{sq: At(0, 0), want: true},
		{sq: At(7, 7), want: true},
		{sq: At(3, 5), want: true},
		{sq: At(-1, 0), want: false},
		{sq: At(0, -1), want: false},
		{sq: At(8, 0), want: false},
		{sq: At(0, 8), want: false},
		{sq: At(10, -3), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.sq.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsInBounds(tt.sq))
		})
	}
}

func TestSquare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, At(4, 4), At(4, 4))
	assert.NotEqual(t, At(4, 4), At(4, 5))
	assert.Equal(t, At(6, 3), At(4, 4).Add(Offset{DRow: 2, DCol: -1}))
	assert.Equal(t, 28, At(3, 4).Index())
	assert.Equal(t, "e4", At(3, 4).String())
	assert.Equal(t, "(8,-1)", At(8, -1).String())
	assert.Equal(t, "", At(8, -1).Notation())
}
