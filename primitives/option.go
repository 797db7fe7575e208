// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// OptionAccountIDs is an optional list of account IDs, wire compatible with
// Option<Vec<AccountId>>.
type OptionAccountIDs struct {
	HasValue bool
	Value    []AccountID
}

// NewOptionAccountIDs wraps a value in a set option.
func NewOptionAccountIDs(value []AccountID) OptionAccountIDs {
	return OptionAccountIDs{HasValue: true, Value: value}
}

// NewOptionAccountIDsEmpty returns an unset option.
func NewOptionAccountIDsEmpty() OptionAccountIDs {
	return OptionAccountIDs{}
}

func (o OptionAccountIDs) Encode(encoder scale.Encoder) error {
	return encodeOption(encoder, o.HasValue, o.Value)
}

func (o *OptionAccountIDs) Decode(decoder scale.Decoder) error {
	return decodeOption(decoder, &o.HasValue, &o.Value)
}

// OptionCommitteeSeats is wire compatible with Option<CommitteeSeats>.
type OptionCommitteeSeats struct {
	HasValue bool
	Value    CommitteeSeats
}

// NewOptionCommitteeSeats wraps a value in a set option.
func NewOptionCommitteeSeats(value CommitteeSeats) OptionCommitteeSeats {
	return OptionCommitteeSeats{HasValue: true, Value: value}
}

// NewOptionCommitteeSeatsEmpty returns an unset option.
func NewOptionCommitteeSeatsEmpty() OptionCommitteeSeats {
	return OptionCommitteeSeats{}
}

func (o OptionCommitteeSeats) Encode(encoder scale.Encoder) error {
	return encodeOption(encoder, o.HasValue, o.Value)
}

func (o *OptionCommitteeSeats) Decode(decoder scale.Decoder) error {
	return decodeOption(decoder, &o.HasValue, &o.Value)
}

// OptionTimepoint is wire compatible with Option<Timepoint>.
type OptionTimepoint struct {
	HasValue bool
	Value    Timepoint
}

// NewOptionTimepoint wraps a value in a set option.
func NewOptionTimepoint(value Timepoint) OptionTimepoint {
	return OptionTimepoint{HasValue: true, Value: value}
}

// NewOptionTimepointEmpty returns an unset option.
func NewOptionTimepointEmpty() OptionTimepoint {
	return OptionTimepoint{}
}

func (o OptionTimepoint) Encode(encoder scale.Encoder) error {
	return encodeOption(encoder, o.HasValue, o.Value)
}

func (o *OptionTimepoint) Decode(decoder scale.Decoder) error {
	return decodeOption(decoder, &o.HasValue, &o.Value)
}

func encodeOption(encoder scale.Encoder, hasValue bool, value interface{}) error {
	if !hasValue {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encoder.Encode(value)
}

func decodeOption(decoder scale.Decoder, hasValue *bool, value interface{}) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if tag == 0 {
		*hasValue = false
		return nil
	}
	*hasValue = true
	return decoder.Decode(value)
}
