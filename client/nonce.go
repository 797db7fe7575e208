// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"sync"
)

// nonceManager hands out transaction nonces without a chain round trip per
// transaction. The first nonce is fetched from chain state; afterwards the
// counter is bumped locally, which keeps rapid successive submissions valid
// before the previous ones are included in a block. Resync drops the local
// counter so the next nonce is fetched fresh, which is the recovery path
// after a failed submission.
type nonceManager struct {
	mu     sync.Mutex
	fetch  func() (uint32, error)
	next   uint32
	primed bool
}

func newNonceManager(fetch func() (uint32, error)) *nonceManager {
	return &nonceManager{fetch: fetch}
}

// Next returns the nonce to sign the next transaction with.
func (m *nonceManager) Next() (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.primed {
		nonce, err := m.fetch()
		if err != nil {
			return 0, err
		}
		m.next = nonce
		m.primed = true
	}
	nonce := m.next
	m.next++
	return nonce, nil
}

// Resync discards the local counter.
func (m *nonceManager) Resync() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.primed = false
}
