package majsoul

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// 传输层外壳 Wrapper{1:name, 2:data}，牌谱正文与其中的每条记录都套着它
const (
	wrapperNameField = 1
	wrapperDataField = 2
)

// GameDetailRecords 的字段号；旧版牌谱用records，新版用actions(每条的result才是记录)
const (
	detailRecordsField = 1
	detailActionsField = 3
	actionResultField  = 2
)

var ErrBadWrapper = errors.New("malformed wrapper")

// SplitWrapper 拆开一层外壳，返回记录名与载荷
func SplitWrapper(b []byte) (name string, data []byte, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return "", nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return "", nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		switch num {
		case wrapperNameField:
			name = string(v)
		case wrapperDataField:
			data = v
		}
		b = b[n:]
	}
	return name, data, nil
}

// SplitRecords 从GameDetailRecords载荷中取出每条记录(仍带外壳)
func SplitRecords(b []byte) ([][]byte, error) {
	var records [][]byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case detailRecordsField:
			records = append(records, v)
		case detailActionsField:
			result, err := actionResult(v)
			if err != nil {
				return nil, err
			}
			// 空result的action是玩家操作回执，不是记录
			if len(result) > 0 {
				records = append(records, result)
			}
		}
	}
	return records, nil
}

func actionResult(b []byte) ([]byte, error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		b = b[n:]

		if num == actionResultField && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
			}
			return v, nil
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrBadWrapper, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil, nil
}
