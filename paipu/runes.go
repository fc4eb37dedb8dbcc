package paipu

// Lang 输出名称的语言偏好
type Lang int

const (
	LangJP Lang = iota // 全日文
	LangRO             // 适度的日文(罗马音)
	LangEN             // 英文
)

// labelSet 按语言索引的固定标签，静态只读
type labelSet [3]string

func (l labelSet) Get(lang Lang) string {
	return l[lang]
}

var (
	/* 和牌限制 */
	runeMangan        = labelSet{"満貫", "Mangan ", "Mangan "}
	runeHaneman       = labelSet{"跳満", "Haneman ", "Haneman "}
	runeBaiman        = labelSet{"倍満", "Baiman ", "Baiman "}
	runeSanbaiman     = labelSet{"三倍満", "Sanbaiman ", "Sanbaiman "}
	runeYakuman       = labelSet{"役満", "Yakuman ", "Yakuman "}
	runeKazoeYakuman  = labelSet{"数え役満", "Kazoe Yakuman ", "Counted Yakuman "}
	runeKiriageMangan = labelSet{"切り上げ満貫", "Kiriage Mangan ", "Rounded Mangan "}
	/* 局终止条件 */
	runeAgari          = labelSet{"和了", "Agari", "Agari"}
	runeRyuukyoku      = labelSet{"流局", "Ryuukyoku", "Exhaustive Draw"}
	runeNagashiMangan  = labelSet{"流し満貫", "Nagashi Mangan", "Mangan at Draw"}
	runeSuukaikan      = labelSet{"四開槓", "Suukaikan", "Four Kan Abortion"}
	runeSanchahou      = labelSet{"三家和", "Sanchahou", "Three Ron Abortion"}
	runeKyuushuKyuuhai = labelSet{"九種九牌", "Kyuushu Kyuuhai", "Nine Terminal Abortion"}
	runeSuufonRenda    = labelSet{"四風連打", "Suufon Renda", "Four Wind Abortion"}
	runeSuuchaRiichi   = labelSet{"四家立直", "Suucha Riichi", "Four Riichi Abortion"}
	/* 得分 */
	runeFu     = labelSet{"符", "符", "Fu"}
	runeHan    = labelSet{"飜", "飜", "Han"}
	runePoints = labelSet{"点", "点", "Points"}
	runeAll    = labelSet{"∀", "∀", "∀"}
	/* 房间 */
	runeTonpuu     = labelSet{"東喰", " East", " East"}
	runeHanchan    = labelSet{"南喰", " South", " South"}
	runeFriendly   = labelSet{"友人戦", "Friendly", "Friendly"}
	runeTournament = labelSet{"大会戦", "Tournament", "Tournament"}
	runeSanma      = labelSet{"三", "3-Player ", "3-Player "}
	runeRed        = labelSet{"赤", " Red", " Red Fives"}
	runeNoRed      = labelSet{"", " Aka Nashi", " No Red Fives"}
)

// Options 转换配置
type Options struct {
	Lang         Lang // 输出语言
	ShowFu       bool // 满贯以上也显示符/飜
	Kiriage      bool // 切上满贯
	TsumoLossOff bool // 三麻自摸损关闭
}

func DefaultOptions() *Options {
	return &Options{Lang: LangJP}
}
