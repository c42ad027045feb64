package model

import "github.com/shopspring/decimal"

type BetType string

const (
	BetRed      BetType = "Red"
	BetBlack    BetType = "Black"
	BetGreen    BetType = "Green"
	BetStraight BetType = "Straight"
	BetSplit    BetType = "Split"
	BetStreet   BetType = "Street"
	BetCorner   BetType = "Corner"
	BetLine     BetType = "Line"
)

type Color string

const (
	ColorRed   Color = "Red"
	ColorBlack Color = "Black"
	ColorGreen Color = "Green"
)

// RouletteBet - ставка: тип, набор чисел (для числовых типов) и сумма
type RouletteBet struct {
	Type     BetType
	Numbers  []int
	Bet      decimal.Decimal
	CryptoID string
}

// WheelResult - результат вращения колеса
type WheelResult struct {
	Color  Color
	Number int
}

type RouletteResult struct {
	Wheel   WheelResult
	Payout  decimal.Decimal // подписанная дельта: выигрыш или -ставка
	Balance decimal.Decimal
}
