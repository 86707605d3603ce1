package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsAtStake(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{name: "default balance", points: 1000, want: 50},
		{name: "mid balance", points: 600, want: 30},
		{name: "five percent floored", points: 459, want: 22},
		{name: "clamped to minimum", points: 100, want: 10},
		{name: "zero balance still wagers the minimum", points: 0, want: 10},
		{name: "clamped to maximum", points: 5000, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsAtStake(tt.points))
		})
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name          string
		playerWins    int
		opponentWins  int
		pointsAtStake int
		want          Settlement
	}{
		{
			name:          "sweep pays stake per round won",
			playerWins:    3,
			opponentWins:  0,
			pointsAtStake: 50,
			want:          Settlement{Won: true, RatingDelta: 20, PointsDelta: 150},
		},
		{
			name:          "close win pays the same per round",
			playerWins:    3,
			opponentWins:  2,
			pointsAtStake: 30,
			want:          Settlement{Won: true, RatingDelta: 20, PointsDelta: 90},
		},
		{
			name:          "loss costs half the stake",
			playerWins:    1,
			opponentWins:  3,
			pointsAtStake: 50,
			want:          Settlement{Won: false, RatingDelta: -10, PointsDelta: -25},
		},
		{
			name:          "odd stake loss floors toward zero",
			playerWins:    0,
			opponentWins:  3,
			pointsAtStake: 25,
			want:          Settlement{Won: false, RatingDelta: -10, PointsDelta: -12},
		},
		{
			name:          "drawn tallies settle as a loss",
			playerWins:    2,
			opponentWins:  2,
			pointsAtStake: 40,
			want:          Settlement{Won: false, RatingDelta: -10, PointsDelta: -20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.playerWins, tt.opponentWins, tt.pointsAtStake)
			assert.Equal(t, tt.want, got)
		})
	}
}
