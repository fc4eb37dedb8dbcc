package majsoul_test

import (
	"encoding/json"
	"testing"

	"github.com/kevin-chtw/tw_paipu/majsoul"
	"github.com/kevin-chtw/tw_paipu/paipu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(name, data string) majsoul.Envelope {
	return majsoul.Envelope{Name: name, Data: json.RawMessage(data)}
}

func Test_DecodeNewRound(t *testing.T) {
	envs := []majsoul.Envelope{env(".lq.RecordNewRound", `{
		"chang": 1, "ju": 2, "ben": 1, "liqibang": 2,
		"scores": [25000, 25000, 25000, 25000],
		"dora": "3s",
		"tiles2": ["1m","2m","3m","4m","5m","6m","7m","8m","9m","1p","2p","3p","4p","0p"]
	}`)}

	actions, err := majsoul.DecodeActions(envs)
	require.NoError(t, err)
	require.Len(t, actions, 1)

	a, ok := actions[0].(*paipu.NewRoundAction)
	require.True(t, ok)
	assert.Equal(t, int32(1), a.Chang)
	assert.Equal(t, int32(2), a.Ju)
	assert.Equal(t, int32(1), a.Ben)
	assert.Equal(t, int32(2), a.Liqibang)
	assert.Equal(t, []paipu.Tile{33}, a.Doras)
	require.Len(t, a.Tiles[2], 14)
	assert.Equal(t, paipu.Tile(52), a.Tiles[2][13])
	assert.Empty(t, a.Tiles[0])
}

func Test_DecodeDiscardAndDeal(t *testing.T) {
	envs := []majsoul.Envelope{
		env("RecordDiscardTile", `{"seat":1,"tile":"5z","moqie":true,"doras":["1m","2m"]}`),
		env("RecordDiscardTile", `{"seat":2,"tile":"9s","is_liqi":true}`),
		env("RecordDealTile", `{"seat":3,"tile":"0m"}`),
	}

	actions, err := majsoul.DecodeActions(envs)
	require.NoError(t, err)

	d1 := actions[0].(*paipu.DiscardAction)
	assert.True(t, d1.Tsumogiri)
	assert.False(t, d1.Riichi)
	assert.Equal(t, paipu.Tile(45), d1.Tile)
	assert.Equal(t, []paipu.Tile{11, 12}, d1.Doras)

	d2 := actions[1].(*paipu.DiscardAction)
	assert.True(t, d2.Riichi)

	d3 := actions[2].(*paipu.DealTileAction)
	assert.Equal(t, paipu.Tile(51), d3.Tile)
	assert.Equal(t, int32(3), d3.Seat)
}

func Test_DecodeCalls(t *testing.T) {
	envs := []majsoul.Envelope{
		env("RecordChiPengGang", `{"seat":0,"type":0,"tiles":["2m","3m","1m"]}`),
		env("RecordChiPengGang", `{"seat":1,"type":1,"tiles":["5p","5p","0p"]}`),
		env("RecordChiPengGang", `{"seat":2,"type":2,"tiles":["1z","1z","1z","1z"]}`),
		env("RecordAnGangAddGang", `{"seat":3,"type":3,"tiles":"6s"}`),
		env("RecordAnGangAddGang", `{"seat":3,"type":2,"tiles":"0s"}`),
		env("RecordBaBei", `{"seat":1}`),
	}

	actions, err := majsoul.DecodeActions(envs)
	require.NoError(t, err)

	chi := actions[0].(*paipu.MeldAction)
	assert.Equal(t, paipu.MeldChi, chi.Kind)
	assert.Equal(t, []paipu.Tile{12, 13, 11}, chi.Tiles)

	pon := actions[1].(*paipu.MeldAction)
	assert.Equal(t, paipu.MeldPon, pon.Kind)
	assert.Equal(t, []paipu.Tile{25, 25, 52}, pon.Tiles)

	kan := actions[2].(*paipu.MeldAction)
	assert.Equal(t, paipu.MeldDaiminkan, kan.Kind)

	ankan := actions[3].(*paipu.SelfKanAction)
	assert.Equal(t, paipu.KanConcealed, ankan.Kind)
	assert.Equal(t, paipu.Tile(36), ankan.Tile)

	kakan := actions[4].(*paipu.SelfKanAction)
	assert.Equal(t, paipu.KanAdded, kakan.Kind)
	assert.Equal(t, paipu.Tile(53), kakan.Tile)

	kita := actions[5].(*paipu.KitaAction)
	assert.Equal(t, int32(1), kita.Seat)
}

func Test_DecodeTerminals(t *testing.T) {
	envs := []majsoul.Envelope{
		env("RecordHule", `{"hules":[
			{"seat":2,"zimo":true,"fu":30,"count":3,
			 "fans":[{"id":1,"val":1},{"id":31,"val":2}],
			 "li_doras":["4z"]}
		]}`),
		env("RecordNoTile", `{
			"liujumanguan": false,
			"players": [{"tenpai":true},{"tenpai":false},{"tenpai":false},{"tenpai":false}],
			"scores": [{"delta_scores":[3000,-1000,-1000,-1000]}]
		}`),
		env("RecordLiuJu", `{"type":1}`),
	}

	actions, err := majsoul.DecodeActions(envs)
	require.NoError(t, err)

	hule := actions[0].(*paipu.HuleAction)
	require.Len(t, hule.Wins, 1)
	w := hule.Wins[0]
	assert.True(t, w.Zimo)
	assert.Equal(t, int32(3), w.Han)
	assert.Equal(t, []paipu.Fan{{ID: 1, Val: 1}, {ID: 31, Val: 2}}, w.Fans)
	assert.Equal(t, []paipu.Tile{44}, w.LiDoras)

	notile := actions[1].(*paipu.NoTileAction)
	assert.Equal(t, []bool{true, false, false, false}, notile.Tenpai)
	assert.Equal(t, [][]int32{{3000, -1000, -1000, -1000}}, notile.DeltaHints)

	liuju := actions[2].(*paipu.LiujuAction)
	assert.Equal(t, paipu.LiujuKyuushu, liuju.Kind)
}

func Test_DecodeUnknownRecord(t *testing.T) {
	envs := []majsoul.Envelope{env(".lq.RecordFillAwaitingTiles", `{}`)}
	actions, err := majsoul.DecodeActions(envs)
	require.NoError(t, err)

	u, ok := actions[0].(*paipu.UnknownAction)
	require.True(t, ok)
	assert.Equal(t, "RecordFillAwaitingTiles", u.Name)
}

func Test_DecodeBadTile(t *testing.T) {
	envs := []majsoul.Envelope{env("RecordDealTile", `{"seat":0,"tile":"xx"}`)}
	_, err := majsoul.DecodeActions(envs)
	assert.Error(t, err)
}

func Test_HeadInfo(t *testing.T) {
	raw := `{
		"head": {
			"uuid": "191229-abc",
			"end_time": 1577590000,
			"config": {
				"meta": {"room_id": 123},
				"mode": {"mode": 2, "detail_rule": {"dora_count": 3, "have_zimosun": true}}
			},
			"accounts": [{"seat": 0, "nickname": "alpha"}],
			"result": {"players": [{"seat":0},{"seat":1},{"seat":2}]}
		},
		"records": []
	}`
	tr, err := majsoul.ParseTranscript([]byte(raw))
	require.NoError(t, err)

	info := tr.Head.Info(nil)
	assert.Equal(t, "191229-abc", info.UUID)
	assert.Equal(t, 3, info.PlayerCount)
	assert.Equal(t, int32(123), info.RoomID)
	assert.True(t, info.HasDetailRule)
	assert.True(t, info.HaveZimosun)
	assert.Equal(t, int32(3), info.DoraCount)
	require.Len(t, info.Accounts, 1)
	assert.Equal(t, "alpha", info.Accounts[0].Nickname)
}

func Test_ParseTranscriptRejectsBinary(t *testing.T) {
	_, err := majsoul.ParseTranscript([]byte{0x0a, 0x03, 0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, majsoul.ErrNotTranscript)
}
