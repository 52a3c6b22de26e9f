// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line access to the action codec, key utilities and the
// transaction pipeline
//
// ABIs are taken from --abi account=file flags, the abi_files table
// of the configuration, or fetched from the configured node.
//
// e.g. pack transfer arguments and build an unsigned transaction:
//
//   eosapi-cli --abi eosio.token=token.abi pack-args -a eosio.token -n transfer \
//       -j '{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi"}'
//
//   eosapi-cli --config eosapi.conf gen-tx -j @actions.json -b 0000000a...
package main
