package payments

import "context"

// Processor creates payment intents with an external card processor.
// Amounts are in minor units (cents).
type Processor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
