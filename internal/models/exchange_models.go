package models

import (
	"github.com/shopspring/decimal"
)

// Rate множитель курса в виде дроби Num/Den. Деление выполняется последним,
// поэтому 1300 * 1/130 дает ровно 10.
type Rate struct {
	Num decimal.Decimal
	Den decimal.Decimal
}

func NewRate(num, den decimal.Decimal) Rate {
	return Rate{Num: num, Den: den}
}

// Apply переводит сумму по курсу
func (r Rate) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Num).Div(r.Den)
}

// Value значение курса для отображения и журнала
func (r Rate) Value() decimal.Decimal {
	return r.Num.Div(r.Den)
}

// RateTable курсы по упорядоченной паре валют, ключ "FROM_TO"
type RateTable map[string]Rate

// RateKey строит ключ таблицы курсов для пары валют
func RateKey(from, to Currency) string {
	return string(from) + "_" + string(to)
}

func (t RateTable) Rate(from, to Currency) (Rate, bool) {
	rate, ok := t[RateKey(from, to)]
	return rate, ok
}

// Clone возвращает независимую копию таблицы
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Values курсы в виде десятичных значений
func (t RateTable) Values() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t))
	for k, v := range t {
		out[k] = v.Value()
	}
	return out
}

// ExchangeRatesResponse ответ с курсами валют
type ExchangeRatesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates" swaggertype:"object,string"`
}
