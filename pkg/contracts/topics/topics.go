package topics

const (
	// Odds de fixtures ingeridas do provedor
	FixtureOdds = "fixture_odds"

	// Picks
	PickGenerated = "pick_generated"
	PickSettled   = "pick_settled"

	// DLQs
	PickSettledDLQ = "pick_settled_dlq"
)
