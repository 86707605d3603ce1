package match

// Settlement constants
const (
	// WinRatingDelta and LossRatingDelta adjust a player's rating
	// after a match
	WinRatingDelta  = 20
	LossRatingDelta = -10

	// StakeFraction of the initiating player's balance is wagered,
	// clamped to [StakeMin, StakeMax]
	StakeFraction = 0.05
	StakeMin      = 10
	StakeMax      = 50
)

// Settlement is the rating and points outcome for one real player
type Settlement struct {
	// Won indicates the player took more rounds than the opponent
	Won bool

	// RatingDelta is applied to the player's rating
	RatingDelta int

	// PointsDelta is applied to the player's balance; the resulting
	// balance is clamped to a minimum of 0 by the caller
	PointsDelta int
}

// PointsAtStake computes the wager fixed at match creation from the
// initiating player's balance.
func PointsAtStake(points int) int {
	stake := int(float64(points) * StakeFraction)
	if stake < StakeMin {
		return StakeMin
	}
	if stake > StakeMax {
		return StakeMax
	}
	return stake
}

// Settle computes the final rating and points deltas for a player who
// took playerWins rounds against opponentWins. Pure; applying the
// deltas and persisting is the caller's job.
func Settle(playerWins, opponentWins, pointsAtStake int) Settlement {
	if playerWins > opponentWins {
		return Settlement{
			Won:         true,
			RatingDelta: WinRatingDelta,
			PointsDelta: pointsAtStake * playerWins,
		}
	}

	return Settlement{
		Won:         false,
		RatingDelta: LossRatingDelta,
		PointsDelta: -(pointsAtStake / 2),
	}
}
