package playershop

// Config holds the player shop trade rules. It is assembled from the economy and
// shop sections at startup.
type Config struct {
	// TaxRate is withheld from whoever receives money in a trade, clamped to [0, 1].
	TaxRate float64
	// TaxAccount receives withheld tax. Empty burns it.
	TaxAccount string
	// MaxMultiplier caps how many lots one trade may take.
	MaxMultiplier int
}
