package call

import (
	"strconv"
	"strings"

	abicodec "github.com/wippyai/abi-codec"
	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
	"github.com/wippyai/abi-codec/soltype"
)

// Event describes a contract event. Indexed inputs are carried as topics,
// the others as log data.
type Event struct {
	Name      string
	Inputs    []soltype.Param
	Anonymous bool

	indexed   []*soltype.Type
	data      *soltype.Type
	signature string
	topic     abicodec.Word
}

// NewEvent returns the event name(inputs).
func NewEvent(name string, inputs []soltype.Param, anonymous bool) *Event {
	e := &Event{
		Name:      name,
		Inputs:    inputs,
		Anonymous: anonymous,
	}
	var data []soltype.Param
	for _, in := range inputs {
		if in.Indexed {
			e.indexed = append(e.indexed, in.Type)
		} else {
			data = append(data, in)
		}
	}
	e.data = paramTypes(data)
	e.signature = name + paramTypes(inputs).String()
	e.topic = EventTopic(e.signature)
	return e
}

// ParseEvent parses an event declaration such as
// "event Transfer(address indexed from, address indexed to, uint256 value)".
// A trailing "anonymous" marks an event without topic 0.
func ParseEvent(sig string) (*Event, error) {
	name, in, rest, err := splitSignature(sig, "event")
	if err != nil {
		return nil, err
	}
	inputs, err := soltype.ParseParams(in)
	if err != nil {
		return nil, abierrors.ParseFailed("event "+quote(sig), err)
	}
	anonymous := false
	switch strings.TrimSuffix(rest, ";") {
	case "":
	case "anonymous":
		anonymous = true
	default:
		return nil, abierrors.InvalidType(sig, "unexpected "+quote(rest))
	}
	return NewEvent(name, inputs, anonymous), nil
}

// MustParseEvent is like ParseEvent but panics on error.
func MustParseEvent(sig string) *Event {
	e, err := ParseEvent(sig)
	if err != nil {
		panic(err)
	}
	return e
}

// Signature returns the canonical signature including indexed inputs.
func (e *Event) Signature() string { return e.signature }

// Topic returns topic 0, the hash of the signature.
func (e *Event) Topic() abicodec.Word { return e.topic }

func (e *Event) String() string { return e.signature }

// Data returns a zero tuple of the non-indexed inputs.
func (e *Event) Data() *soltype.Tuple { return e.data.NewTuple() }

// EncodeData encodes the non-indexed inputs as log data.
func (e *Event) EncodeData(vals *soltype.Tuple) ([]byte, error) {
	if err := checkTuple(e.data, vals); err != nil {
		return nil, err
	}
	return coder.EncodeParams(vals), nil
}

// DecodeData decodes log data into dst.
func (e *Event) DecodeData(data []byte, dst *soltype.Tuple) error {
	return e.DecodeDataWithConfig(data, dst, nil)
}

// DecodeDataWithConfig is DecodeData with explicit decoder limits.
func (e *Event) DecodeDataWithConfig(data []byte, dst *soltype.Tuple, cfg *coder.Config) error {
	if err := checkTuple(e.data, dst); err != nil {
		return err
	}
	return coder.DecodeParamsWithConfig(data, dst, cfg)
}

// Topics returns the log topics for the given indexed values, in
// declaration order. Static values are stored as their single word, bytes
// and string values as the hash of their contents. Other dynamic values
// cannot be indexed here.
func (e *Event) Topics(indexed ...soltype.Value) ([]abicodec.Word, error) {
	if len(indexed) != len(e.indexed) {
		return nil, abierrors.InvalidInput(abierrors.PhaseCall,
			"event "+e.Name+" needs "+strconv.Itoa(len(e.indexed))+" indexed values, got "+strconv.Itoa(len(indexed)))
	}

	topics := make([]abicodec.Word, 0, len(indexed)+1)
	if !e.Anonymous {
		topics = append(topics, e.topic)
	}
	for i, v := range indexed {
		want := e.indexed[i]
		if v.TypeName() != want.String() {
			return nil, abierrors.TypeMismatch(abierrors.PhaseCall, []string{strconv.Itoa(i)}, v.TypeName(), want.String())
		}
		t, err := topicOf(v)
		if err != nil {
			return nil, abierrors.PrependPath(err, strconv.Itoa(i))
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func topicOf(v soltype.Value) (abicodec.Word, error) {
	switch v := v.(type) {
	case *soltype.Bytes:
		return Keccak256(*v), nil
	case *soltype.String:
		return Keccak256([]byte(*v)), nil
	}
	if v.IsDynamic() || v.HeadWords() != 1 {
		return abicodec.Word{}, abierrors.Unsupported(abierrors.PhaseCall, "indexed "+v.TypeName())
	}
	var w abicodec.Word
	copy(w[:], coder.EncodeSingle(v))
	return w, nil
}
