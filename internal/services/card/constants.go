package card

// Card validity period, in months from the creation date.
const ExpirationMonths = 36

// Upper bounds for the generated identifiers. Each card number group and the
// PIN draw from [0, 10000); the CCV draws from [0, 1000).
const (
	cardNumberGroupBound = 10000
	cardPinBound         = 10000
	ccvCodeBound         = 1000
)
