package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/kevin-chtw/tw_paipu/paipu"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Fetcher 按uuid取回一份原始牌谱；实现方自带传输细节
type Fetcher interface {
	Fetch(ctx context.Context, uuid string) ([]byte, error)
}

// Decoder 把原始牌谱解成动作流与对局信息
type Decoder interface {
	Decode(raw []byte) ([]paipu.Action, *paipu.MatchInfo, error)
}

// Result 单场的处理结果
type Result struct {
	UUID string
	Doc  *paipu.Document
	Err  error
}

func (r *Result) Done() bool   { return r.Err == nil }
func (r *Result) Failed() bool { return r.Err != nil }

// Queue 串行处理器：一次一场，场间固定间隔，单场失败不影响后续
type Queue struct {
	fetcher Fetcher
	decoder Decoder
	opts    *paipu.Options
	delay   time.Duration
}

func NewQueue(fetcher Fetcher, decoder Decoder, opts *paipu.Options, delay time.Duration) *Queue {
	if opts == nil {
		opts = paipu.DefaultOptions()
	}
	return &Queue{fetcher: fetcher, decoder: decoder, opts: opts, delay: delay}
}

// Run 依次转换每个uuid；只有ctx取消会中断队列
func (q *Queue) Run(ctx context.Context, uuids []string) ([]Result, error) {
	results := make([]Result, 0, len(uuids))
	for i, uuid := range uuids {
		if i > 0 && q.delay > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(q.delay):
			}
		}

		doc, err := q.convert(ctx, uuid)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			logger.Log.Warnf("paipu %s failed: %v", uuid, err)
			results = append(results, Result{UUID: uuid, Err: err})
			continue
		}
		logger.Log.Infof("paipu %s converted", uuid)
		results = append(results, Result{UUID: uuid, Doc: doc})
	}
	return results, nil
}

func (q *Queue) convert(ctx context.Context, uuid string) (*paipu.Document, error) {
	raw, err := q.fetcher.Fetch(ctx, uuid)
	if err != nil {
		return nil, &paipu.ConversionError{UUID: uuid, Err: fmt.Errorf("fetch: %w", err)}
	}
	actions, info, err := q.decoder.Decode(raw)
	if err != nil {
		return nil, &paipu.ConversionError{UUID: uuid, Err: fmt.Errorf("decode: %w", err)}
	}
	if info == nil {
		info = &paipu.MatchInfo{UUID: uuid, PlayerCount: 4}
	}
	// Convert自带ConversionError封装
	return paipu.Convert(actions, info, q.opts)
}
