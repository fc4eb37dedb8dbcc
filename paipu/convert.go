package paipu

import (
	"errors"
	"fmt"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	// ErrNoOpenRound 终局动作出现时没有进行中的局
	ErrNoOpenRound = errors.New("no open round")
	// ErrNoActions 空动作流
	ErrNoActions = errors.New("empty action stream")
)

// ConversionError 单场转换失败；只影响这一场，不污染队列里的其他牌谱
type ConversionError struct {
	UUID string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.UUID, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// GenerateLog 顺序消费动作流，每局一个Kyoku，终局动作产出一条log条目。
// 无法识别的动作跳过并告警，不中断转换
func GenerateLog(actions []Action, opts *Options) ([][]any, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	log := make([][]any, 0)
	var k *Kyoku
	for i, a := range actions {
		if _, ok := a.(*NewRoundAction); !ok && k == nil {
			if _, unknown := a.(*UnknownAction); !unknown {
				return nil, fmt.Errorf("action %d (%T): %w", i, a, ErrNoOpenRound)
			}
		}

		switch act := a.(type) {
		case *NewRoundAction:
			// 上一局必须已由各自的终局动作收尾
			k = newKyoku(act)
		case *DiscardAction:
			k.recordDiscard(act)
		case *DealTileAction:
			k.recordDraw(act)
		case *MeldAction:
			k.recordMeld(act)
		case *SelfKanAction:
			k.recordSelfKan(act)
		case *KitaAction:
			k.recordKita(act)
		case *HuleAction:
			log = append(log, k.resolveHule(act, opts))
			k = nil
		case *NoTileAction:
			log = append(log, k.resolveNoTile(act, opts))
			k = nil
		case *LiujuAction:
			log = append(log, k.resolveLiuju(act, opts))
			k = nil
		default:
			logger.Log.Warnf("skip unrecognized action %q at %d", a.actionKind(), i)
		}
	}
	return log, nil
}

// Convert 把一场比赛的动作流与对局信息组装为天凤文档
func Convert(actions []Action, info *MatchInfo, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if info != nil && info.PlayerCount == 3 && info.HasDetailRule {
		// 自摸损规则由对局细则决定，需在结算前生效
		o.TsumoLossOff = !info.HaveZimosun
	}

	log, err := GenerateLog(actions, &o)
	if err != nil {
		uuid := ""
		if info != nil {
			uuid = info.UUID
		}
		return nil, &ConversionError{UUID: uuid, Err: err}
	}
	return Assemble(log, info, &o), nil
}
