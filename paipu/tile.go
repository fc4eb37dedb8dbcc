package paipu

import (
	"errors"
	"strconv"
)

// 天凤编码:
//
//	11-19    - 1-9万
//	21-29    - 1-9筒
//	31-39    - 1-9索
//	41-47    - 东南西北白发中
//	51,52,53 - 赤5万, 赤5筒, 赤5索
type Tile int32

const TileNull Tile = -1

var ErrInvalidTile = errors.New("invalid tile")

type ESuit int

const (
	SuitUndefined ESuit = iota
	SuitCharacter       // 万
	SuitDot             // 筒
	SuitBamboo          // 索
	SuitHonor           // 字
)

// 雀魂记录的花色后缀
var suitBySymbol = map[byte]ESuit{
	'm': SuitCharacter,
	'p': SuitDot,
	's': SuitBamboo,
	'z': SuitHonor,
}

var symbolBySuit = [...]byte{SuitCharacter: 'm', SuitDot: 'p', SuitBamboo: 's', SuitHonor: 'z'}

const (
	redBase  = 50 // 赤牌区
	redPoint = 5  // 赤牌对应的普通点数
)

// MakeTile 按花色/点数/赤标记编码为天凤数值
func MakeTile(suit ESuit, point int, red bool) (Tile, error) {
	if suit < SuitCharacter || suit > SuitHonor {
		return TileNull, ErrInvalidTile
	}
	if suit == SuitHonor {
		if point < 1 || point > 7 {
			return TileNull, ErrInvalidTile
		}
	} else if point < 1 || point > 9 {
		return TileNull, ErrInvalidTile
	}
	if red {
		if point != redPoint {
			return TileNull, ErrInvalidTile
		}
		return Tile(redBase + int(suit)), nil
	}
	return Tile(10*int(suit) + point), nil
}

func (t Tile) Suit() ESuit {
	if t.IsRed() {
		return ESuit(int(t) - redBase)
	}
	return ESuit(int(t) / 10)
}

func (t Tile) Point() int {
	if t.IsRed() {
		return redPoint
	}
	return int(t) % 10
}

func (t Tile) IsRed() bool {
	return int(t)/10 == 5
}

func (t Tile) IsValid() bool {
	switch suit := int(t) / 10; suit {
	case 1, 2, 3:
		return int(t)%10 >= 1
	case 4:
		p := int(t) % 10
		return p >= 1 && p <= 7
	case 5:
		s := int(t) % 10
		return s >= 1 && s <= 4
	default:
		return false
	}
}

func (t Tile) IsWind() bool { // 风牌
	return t >= 41 && t <= 44
}

func (t Tile) IsDragon() bool { // 三元牌，含赤变体
	d := t.Deaka()
	return d >= 45 && d <= 47
}

// Deaka 从赤牌得到普通表示
func (t Tile) Deaka() Tile {
	if t.IsRed() {
		return Tile(10*(int(t)%10) + redPoint)
	}
	return t
}

// Makeaka 得到牌的赤变体，非5点数原样返回
func (t Tile) Makeaka() Tile {
	if int(t)%10 == redPoint && !t.IsRed() {
		return Tile(redBase + int(t)/10)
	}
	return t
}

// ParseTile 解析雀魂记法，如"2m"、"0p"(赤5筒)
func ParseTile(s string) (Tile, error) {
	if len(s) != 2 {
		return TileNull, ErrInvalidTile
	}
	suit, ok := suitBySymbol[s[1]]
	if !ok {
		return TileNull, ErrInvalidTile
	}
	num := int(s[0] - '0')
	if num == 0 {
		return Tile(redBase + int(suit)), nil
	}
	return MakeTile(suit, num, false)
}

// String 还原雀魂记法；decode(encode(x))==x
func (t Tile) String() string {
	if !t.IsValid() {
		return "??"
	}
	if t.IsRed() {
		return "0" + string(symbolBySuit[t.Suit()])
	}
	return strconv.Itoa(t.Point()) + string(symbolBySuit[t.Suit()])
}

func ParseTiles(ss []string) ([]Tile, error) {
	tiles := make([]Tile, len(ss))
	for i, s := range ss {
		t, err := ParseTile(s)
		if err != nil {
			return nil, err
		}
		tiles[i] = t
	}
	return tiles, nil
}

func tilesToInts(tiles []Tile) []any {
	res := make([]any, len(tiles))
	for i, t := range tiles {
		res[i] = int(t)
	}
	return res
}
