package extractors

import (
	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/extractors/employees"
	"github.com/custodia-labs/companynorm/internal/extractors/money"
	"github.com/custodia-labs/companynorm/internal/extractors/year"
)

// RegisterDefaults registers the built-in extractors for the recognised
// company fields. moneyOpts configure the money extractor (currency table).
func RegisterDefaults(r *Registry, moneyOpts ...money.Option) {
	r.Register(domain.FieldEmployees, employees.New())
	r.Register(domain.FieldEstablishDate, year.New())
	r.Register(domain.FieldMoney, money.New(moneyOpts...))
}
