package paipu

import "strconv"

// 雀魂役种编号到显示名，取自客户端配置表
var fanNames = map[int32][2]string{
	1:  {"門前清自摸和", "Fully Concealed Hand"},
	2:  {"立直", "Riichi"},
	3:  {"槍槓", "Robbing a Kan"},
	4:  {"嶺上開花", "After a Kan"},
	5:  {"海底摸月", "Under the Sea"},
	6:  {"河底撈魚", "Under the River"},
	7:  {"役牌 白", "White Dragon"},
	8:  {"役牌 發", "Green Dragon"},
	9:  {"役牌 中", "Red Dragon"},
	10: {"自風牌", "Seat Wind"},
	11: {"場風牌", "Prevalent Wind"},
	12: {"断幺九", "All Simples"},
	13: {"一盃口", "Pure Double Sequence"},
	14: {"平和", "Pinfu"},
	15: {"混全帯幺九", "Half Outside Hand"},
	16: {"一気通貫", "Pure Straight"},
	17: {"三色同順", "Mixed Triple Sequence"},
	18: {"ダブル立直", "Double Riichi"},
	19: {"三色同刻", "Triple Triplets"},
	20: {"三槓子", "Three Quads"},
	21: {"対々和", "All Triplets"},
	22: {"三暗刻", "Three Concealed Triplets"},
	23: {"小三元", "Little Three Dragons"},
	24: {"混老頭", "All Terminals and Honors"},
	25: {"七対子", "Seven Pairs"},
	26: {"純全帯幺九", "Fully Outside Hand"},
	27: {"混一色", "Half Flush"},
	28: {"二盃口", "Twice Pure Double Sequence"},
	29: {"清一色", "Full Flush"},
	30: {"一発", "Ippatsu"},
	31: {"ドラ", "Dora"},
	32: {"赤ドラ", "Red Five"},
	33: {"裏ドラ", "Ura Dora"},
	34: {"抜きドラ", "Kita"},
	35: {"天和", "Blessing of Heaven"},
	36: {"地和", "Blessing of Earth"},
	37: {"大三元", "Big Three Dragons"},
	38: {"四暗刻", "Four Concealed Triplets"},
	39: {"字一色", "All Honors"},
	40: {"緑一色", "All Green"},
	41: {"清老頭", "All Terminals"},
	42: {"国士無双", "Thirteen Orphans"},
	43: {"小四喜", "Four Little Winds"},
	44: {"四槓子", "Four Quads"},
	45: {"九蓮宝燈", "Nine Gates"},
	46: {"八連荘", "Paarenchan"},
	47: {"純正九蓮宝燈", "True Nine Gates"},
	48: {"四暗刻単騎", "Single-wait Four Concealed Triplets"},
	49: {"国士無双十三面待ち", "Thirteen-wait Thirteen Orphans"},
	50: {"大四喜", "Four Big Winds"},
	51: {"燕返し", "Tsubame-gaeshi"},
	52: {"槓振り", "Kanburi"},
	53: {"十二落抬", "Shiiaruraotai"},
	54: {"五門斉", "All Types"},
	55: {"三連刻", "Three Chained Triplets"},
	56: {"一色三順", "Pure Triple Sequence"},
	57: {"一筒摸月", "Moon under the Sea"},
	58: {"九筒撈魚", "Fish under the River"},
	59: {"人和", "Blessing of Man"},
	60: {"大車輪", "Big Wheels"},
}

func fanName(id int32, lang Lang) string {
	names, ok := fanNames[id]
	if !ok {
		return "役" + strconv.Itoa(int(id))
	}
	if lang == LangJP {
		return names[0]
	}
	return names[1]
}
