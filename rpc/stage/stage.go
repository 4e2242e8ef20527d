// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stage

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftstages/level"
	"github.com/bitmark-inc/nftstages/record"
	"github.com/bitmark-inc/nftstages/rpc/ratelimit"
	"github.com/bitmark-inc/nftstages/rpc/signature"
	"github.com/bitmark-inc/nftstages/stages"
)

//go:generate mockgen -destination=../mocks/progression.go -package=mocks github.com/bitmark-inc/nftstages/rpc/stage Progression

// Progression - the level operations behind the service
type Progression interface {
	Init(solana.PublicKey, solana.PublicKey, solana.PublicKey) (*record.TokenLevelRecord, solana.PublicKey, error)
	LevelUp(solana.PublicKey, solana.PublicKey, level.Level) (*stages.Result, error)
	Info(solana.PublicKey) (*stages.Info, error)
}

// Stages
// ------

// Stages - type for the RPC
type Stages struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Progression Progression
	Window      time.Duration
	Now         func() time.Time
}

const (
	rateLimitStages = 200
	rateBurstStages = 100
)

// New - create the Stages service
func New(log *logger.L, progression Progression, window time.Duration) *Stages {
	return &Stages{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitStages, rateBurstStages),
		Progression: progression,
		Window:      window,
		Now:         time.Now,
	}
}

// Stages init
// -----------

// InitArguments - arguments for Stages.Init
type InitArguments struct {
	signature.Arguments
	Payer string `json:"payer"` // base58, defaults to owner
}

// InitReply - result of Stages.Init
type InitReply struct {
	Record      solana.PublicKey `json:"record"`
	Initialised bool             `json:"initialised"`
	Level       level.Level      `json:"level"`
}

// Init - create the level record of a token
func (s *Stages) Init(arguments *InitArguments, reply *InitReply) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	mint, owner, err := s.verify("Stages.Init", &arguments.Arguments)
	if nil != err {
		return err
	}

	payer := owner
	if "" != arguments.Payer {
		payer, err = signature.PublicKey(arguments.Payer)
		if nil != err {
			return err
		}
	}

	s.Log.Infof("Stages.Init: mint: %s  owner: %s", mint, owner)

	r, recordAddress, err := s.Progression.Init(mint, owner, payer)
	if nil != err {
		s.Log.Errorf("Stages.Init: mint: %s  error: %s", mint, err)
		return err
	}

	reply.Record = recordAddress
	reply.Initialised = r.Initialised
	reply.Level = r.Level

	return nil
}

// Stages level up
// ---------------

// LevelUpArguments - arguments for Stages.LevelUp
type LevelUpArguments struct {
	signature.Arguments
	Level level.Level `json:"level"` // level the caller saw, signed
}

// LevelUp - advance a token by one level
func (s *Stages) LevelUp(arguments *LevelUpArguments, reply *stages.Result) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	mint, owner, err := s.verify("Stages.LevelUp", &arguments.Arguments, arguments.Level.String())
	if nil != err {
		return err
	}

	s.Log.Infof("Stages.LevelUp: mint: %s  owner: %s  expected level: %d", mint, owner, arguments.Level)

	result, err := s.Progression.LevelUp(mint, owner, arguments.Level)
	if nil != err {
		s.Log.Errorf("Stages.LevelUp: mint: %s  error: %s", mint, err)
		return err
	}

	*reply = *result
	return nil
}

// Stages info
// -----------

// InfoArguments - arguments for Stages.Info
type InfoArguments struct {
	Mint string `json:"mint"` // base58
}

// Info - committed state of a token
func (s *Stages) Info(arguments *InfoArguments, reply *stages.Info) error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	mint, err := signature.PublicKey(arguments.Mint)
	if nil != err {
		return err
	}

	s.Log.Debugf("Stages.Info: mint: %s", mint)

	info, err := s.Progression.Info(mint)
	if nil != err {
		return err
	}

	*reply = *info
	return nil
}

func (s *Stages) verify(method string, arguments *signature.Arguments, fields ...string) (solana.PublicKey, solana.PublicKey, error) {
	mint, owner, err := arguments.Check(method, s.Window, s.Now(), fields...)
	if nil != err {
		s.Log.Warnf("%s: mint: %q  owner: %q  signature error: %s", method, arguments.Mint, arguments.Owner, err)
	}
	return mint, owner, err
}
