// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/resourceledger/registryd/account"
	"github.com/resourceledger/registryd/registry"
	"github.com/resourceledger/registryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/registry-test.leveldb"
	logCategory      = "registry-test"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if err := registry.Initialise(); nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	registry.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAccount(fill byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = fill
	}
	return &account.Account{PublicKey: publicKey}
}
