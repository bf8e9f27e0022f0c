// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"errors"
	"math/rand"
	"strconv"
)

const BodyIDInvalid = BodyID(0)

// BodyID names a body inside a container such as sector.World.
type BodyID uint32

// AllocateBodyID returns a random id for which used returns false.
func AllocateBodyID(used func(id BodyID) bool) (uniqueID BodyID) {
	for i := 0; i < 10; i++ {
		// Use shorter BodyIDs first to save on json
		chars := i + 1
		if chars > 8 {
			chars = 8
		}

		uniqueID = BodyID(rand.Intn(1 << (chars * 4)))
		if uniqueID == BodyIDInvalid {
			continue
		}

		if !used(uniqueID) {
			return uniqueID
		}
	}
	panic("could not find unique BodyID in 10 tries")
}

func (bodyID BodyID) String() string {
	buf, err := bodyID.MarshalText()
	if err != nil {
		return "invalid"
	}
	return string(buf)
}

func (bodyID BodyID) MarshalText() ([]byte, error) {
	if bodyID == BodyIDInvalid {
		return nil, errBodyIDInvalid
	}
	return bodyID.AppendText(make([]byte, 0, 8)), nil
}

// AppendText appends the hex form of bodyID, which must be valid.
func (bodyID BodyID) AppendText(buf []byte) []byte {
	if bodyID == BodyIDInvalid {
		panic("invalid body id")
	}
	return strconv.AppendUint(buf, uint64(bodyID), 16)
}

var errBodyIDInvalid = errors.New("invalid body id")

func (bodyID *BodyID) UnmarshalText(text []byte) error {
	i, err := strconv.ParseUint(string(text), 16, 32)
	*bodyID = BodyID(i)
	if err == nil && *bodyID == BodyIDInvalid {
		err = errBodyIDInvalid
	}
	return err
}
