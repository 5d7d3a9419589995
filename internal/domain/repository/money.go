package repository

import "github.com/shopspring/decimal"

// Money alias usado en agregados de lectura.
type Money = decimal.Decimal

// Total suma y cantidad de filas de un agregado. Key es la clave de agrupación, si la hay.
type Total struct {
	Key   string
	Sum   Money
	Count int
}
