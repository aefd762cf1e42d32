package phoneme

// confusionPair is an unordered pair of phoneme symbols that are
// acoustically close enough to warrant a reduced substitution cost.
type confusionPair struct {
	a, b string
}

// confusionCost is the reduced substitution cost applied to any pair in
// confusionTable. All other substitutions cost 1.0. The value sits inside
// the [0.2, 0.4] band called out by the distance kernel's contract.
const confusionCost = 0.3

// confusionTable lists the acoustically-confusable phoneme pairs. Each
// unordered pair is stored once, in no particular order; lookups try both
// orders.
var confusionTable = map[confusionPair]float64{
	{"P", "B"}:   confusionCost,
	{"T", "D"}:   confusionCost,
	{"K", "G"}:   confusionCost,
	{"S", "Z"}:   confusionCost,
	{"F", "V"}:   confusionCost,
	{"M", "N"}:   confusionCost,
	{"IH", "IY"}: confusionCost,
	{"AE", "EH"}: confusionCost,
}

// substCost returns the cost of substituting phoneme a for phoneme b.
// Identical tokens cost 0; a confusable pair costs confusionCost; anything
// else costs 1.
func substCost(a, b string) float64 {
	if a == b {
		return 0
	}
	if cost, ok := confusionTable[confusionPair{a, b}]; ok {
		return cost
	}
	if cost, ok := confusionTable[confusionPair{b, a}]; ok {
		return cost
	}
	return 1
}
