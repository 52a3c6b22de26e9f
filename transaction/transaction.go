// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/eosapi/fault"
	"github.com/bitmark-inc/eosapi/keypair"
)

// sizes of identifiers
const (
	BlockIDSize = 32
	ChainIDSize = 32
)

// Build - wrap actions in an unsigned transaction that expires the
// given number of seconds from now and references the given block
func Build(actions []Action, expirationSeconds int, referenceBlockID []byte, maxNetBytes uint32) (*SignedTransaction, error) {
	return buildAt(time.Now(), actions, expirationSeconds, referenceBlockID, maxNetBytes)
}

func buildAt(now time.Time, actions []Action, expirationSeconds int, referenceBlockID []byte, maxNetBytes uint32) (*SignedTransaction, error) {
	if BlockIDSize != len(referenceBlockID) {
		return nil, fault.BlockIdLength
	}

	expiration := now.UTC().Add(time.Duration(expirationSeconds) * time.Second).Unix()
	if expiration < 0 || expiration > 0xffffffff {
		return nil, fault.InvalidTime
	}

	s := &SignedTransaction{
		Transaction: Transaction{
			Header: Header{
				Expiration:       TimePointSec(expiration),
				RefBlockNum:      uint16(binary.BigEndian.Uint32(referenceBlockID[0:4])),
				RefBlockPrefix:   binary.LittleEndian.Uint32(referenceBlockID[8:12]),
				MaxNetUsageWords: uint32((uint64(maxNetBytes) + 7) / 8),
			},
			Actions: append([]Action{}, actions...),
		},
	}
	s.normalise()

	// every name must be valid before the transaction is handed out
	_, err := s.Transaction.Bytes()
	if nil != err {
		return nil, err
	}
	return s, nil
}

// SigningDigest - the digest every signature of this transaction covers
func (s *SignedTransaction) SigningDigest(chainID []byte) (keypair.Digest, error) {
	if ChainIDSize != len(chainID) {
		return keypair.Digest{}, fault.ChainIdLength
	}
	packed, err := s.Transaction.Bytes()
	if nil != err {
		return keypair.Digest{}, err
	}

	cfd := keypair.Digest{}
	if 0 != len(s.ContextFreeData) {
		cfd = keypair.NewDigest(packContextFreeData(s.ContextFreeData))
	}
	return keypair.NewDigest(chainID, packed, cfd[:]), nil
}

// Sign - append a signature by the private key
func (s *SignedTransaction) Sign(privateKey keypair.PrivateKey, chainID []byte) error {
	digest, err := s.SigningDigest(chainID)
	if nil != err {
		return err
	}
	sig, err := keypair.Sign(privateKey, digest)
	if nil != err {
		return err
	}
	s.Signatures = append(s.Signatures, sig)
	return nil
}

// RecoverKeys - public keys of all signers, in signature order
func (s *SignedTransaction) RecoverKeys(chainID []byte) ([]keypair.PublicKey, error) {
	digest, err := s.SigningDigest(chainID)
	if nil != err {
		return nil, err
	}
	keys := make([]keypair.PublicKey, 0, len(s.Signatures))
	for _, sig := range s.Signatures {
		p, err := keypair.Recover(sig, digest)
		if nil != err {
			return nil, err
		}
		keys = append(keys, p)
	}
	return keys, nil
}
