// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/postgres"
)

var _ = Describe("AccountRepository", func() {
	var (
		ctx  context.Context
		repo *postgres.AccountRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		truncateAll(ctx)
		repo = postgres.NewAccountRepository(testPool)
	})

	newAccount := func(username string) *auth.Account {
		account, err := auth.NewAccount(username, "", []byte("hash-"+username), []byte("salt-"+username))
		Expect(err).NotTo(HaveOccurred())
		account.CreatedAt = account.CreatedAt.Truncate(time.Microsecond)
		return account
	}

	It("round-trips an account", func() {
		account := newAccount("alice")
		Expect(repo.Create(ctx, account)).To(Succeed())

		stored, err := repo.GetByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.ID).To(Equal(account.ID))
		Expect(stored.PublicName).To(Equal("alice"))
		Expect(stored.PasswordHash).To(Equal(account.PasswordHash))
		Expect(stored.PasswordSalt).To(Equal(account.PasswordSalt))
		Expect(stored.CreatedAt.Equal(account.CreatedAt)).To(BeTrue())
	})

	It("treats usernames as case-sensitive", func() {
		Expect(repo.Create(ctx, newAccount("alice"))).To(Succeed())

		exists, err := repo.ExistsByUsername(ctx, "Alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		Expect(repo.Create(ctx, newAccount("Alice"))).To(Succeed())
	})

	It("rejects a duplicate username and keeps the first credential", func() {
		first := newAccount("alice")
		Expect(repo.Create(ctx, first)).To(Succeed())

		second := newAccount("alice")
		second.PasswordHash = []byte("other-hash")
		err := repo.Create(ctx, second)
		Expect(errors.Is(err, auth.ErrDuplicate)).To(BeTrue())

		stored, err := repo.GetByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.PasswordHash).To(Equal(first.PasswordHash))
	})

	It("reports a missing account as ErrNotFound", func() {
		_, err := repo.GetByUsername(ctx, "ghost")
		Expect(errors.Is(err, auth.ErrNotFound)).To(BeTrue())
	})

	It("updates credentials", func() {
		account := newAccount("alice")
		Expect(repo.Create(ctx, account)).To(Succeed())

		Expect(repo.UpdateCredentials(ctx, account.ID, []byte("new-hash"), []byte("new-salt"))).To(Succeed())

		stored, err := repo.GetByUsername(ctx, "alice")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.PasswordHash).To(Equal([]byte("new-hash")))
		Expect(stored.PasswordSalt).To(Equal([]byte("new-salt")))
	})
})

var _ = Describe("RevocationRepository", func() {
	var (
		ctx   context.Context
		now   time.Time
		clock func() time.Time
		repo  *postgres.RevocationRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		truncateAll(ctx)
		now = time.Now().UTC().Truncate(time.Microsecond)
		clock = func() time.Time { return now }
		repo = postgres.NewRevocationRepositoryWithClock(testPool, clock)
	})

	It("stores only the token hash", func() {
		Expect(repo.Add(ctx, "raw-token", now.Add(time.Hour))).To(Succeed())

		var stored string
		err := testPool.QueryRow(ctx, `SELECT token_hash FROM revoked_tokens`).Scan(&stored)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(auth.HashToken("raw-token")))
	})

	It("contains a token until its expiry", func() {
		Expect(repo.Add(ctx, "tok", now.Add(time.Hour))).To(Succeed())

		Expect(repo.Contains(ctx, "tok")).To(BeTrue())
		Expect(repo.Contains(ctx, "other")).To(BeFalse())

		now = now.Add(time.Hour)
		Expect(repo.Contains(ctx, "tok")).To(BeFalse())
	})

	It("never shortens an existing revocation", func() {
		Expect(repo.Add(ctx, "tok", now.Add(2*time.Hour))).To(Succeed())
		Expect(repo.Add(ctx, "tok", now.Add(time.Minute))).To(Succeed())

		now = now.Add(time.Hour)
		Expect(repo.Contains(ctx, "tok")).To(BeTrue())
	})

	It("handles concurrent revocations of the same token", func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(repo.Add(ctx, "tok", now.Add(time.Duration(i+1)*time.Hour))).To(Succeed())
			}(i)
		}
		wg.Wait()

		var expiresAt time.Time
		err := testPool.QueryRow(ctx, `SELECT expires_at FROM revoked_tokens WHERE token_hash = $1`,
			auth.HashToken("tok")).Scan(&expiresAt)
		Expect(err).NotTo(HaveOccurred())
		Expect(expiresAt.Equal(now.Add(10 * time.Hour))).To(BeTrue())
	})

	It("purges expired records", func() {
		Expect(repo.Add(ctx, "short", now.Add(time.Minute))).To(Succeed())
		Expect(repo.Add(ctx, "long", now.Add(auth.RevocationHorizon))).To(Succeed())

		now = now.Add(time.Hour)
		purged, err := repo.PurgeExpired(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(purged).To(Equal(int64(1)))
		Expect(repo.Contains(ctx, "long")).To(BeTrue())
	})
})
