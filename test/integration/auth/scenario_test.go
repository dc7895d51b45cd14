// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

//go:build integration

package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/samber/oops"

	"github.com/mkwkamil/LoginComponentBackend/internal/auth"
	"github.com/mkwkamil/LoginComponentBackend/internal/auth/cache"
	authpg "github.com/mkwkamil/LoginComponentBackend/internal/auth/postgres"
	"github.com/mkwkamil/LoginComponentBackend/pkg/errutil"
)

var _ = Describe("Authentication lifecycle", func() {
	var (
		ctx context.Context
		svc *auth.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		env.reset()
		svc = env.newService(nil)
	})

	It("registers, logs in, rejects a wrong password and revokes on logout", func() {
		account, err := svc.Register(ctx, "bob", "s3cret!", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(account.PublicName).To(Equal("bob"))

		exists, err := svc.UserExists(ctx, "bob")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())

		token, err := svc.Login(ctx, "bob", "s3cret!")
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		_, err = svc.Login(ctx, "bob", "wrong")
		Expect(errutil.Code(err)).To(Equal(auth.CodeInvalidCredentials))

		identity, err := svc.Authorize(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.Subject).To(Equal("bob"))
		Expect(identity.AccountID).To(Equal(account.ID))

		Expect(svc.Logout(ctx, token)).To(Succeed())

		_, err = svc.Authorize(ctx, token)
		Expect(errutil.Code(err)).To(Equal(auth.CodeTokenRevoked))

		revoked, err := authpg.NewRevocationRepository(env.pool).Contains(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeTrue())
	})

	It("keeps the first credential when a username is registered twice", func() {
		_, err := svc.Register(ctx, "alice", "pw1", "")
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Register(ctx, "alice", "pw2", "")
		Expect(errutil.Code(err)).To(Equal(auth.CodeDuplicateUsername))

		_, err = svc.Login(ctx, "alice", "pw1")
		Expect(err).NotTo(HaveOccurred())
		_, err = svc.Login(ctx, "alice", "pw2")
		Expect(errutil.Code(err)).To(Equal(auth.CodeInvalidCredentials))
	})

	It("answers unknown users and wrong passwords with the same error", func() {
		_, err := svc.Register(ctx, "alice", "pw1", "")
		Expect(err).NotTo(HaveOccurred())

		_, wrongPassword := svc.Login(ctx, "alice", "wrongpw")
		_, unknownUser := svc.Login(ctx, "ghost", "anything")

		Expect(errutil.Code(wrongPassword)).To(Equal(auth.CodeInvalidCredentials))
		Expect(errutil.Code(unknownUser)).To(Equal(auth.CodeInvalidCredentials))
		Expect(wrongPassword.Error()).To(Equal(unknownUser.Error()))
	})

	It("never returns credential material from lookups", func() {
		_, err := svc.Register(ctx, "carol", "pw", "Carol")
		Expect(err).NotTo(HaveOccurred())

		account, err := svc.GetByUsername(ctx, "carol")
		Expect(err).NotTo(HaveOccurred())
		Expect(account.Profile().PublicName).To(Equal("Carol"))
		Expect(account.PasswordHash).NotTo(BeEmpty())

		encoded, err := json.Marshal(account)
		Expect(err).NotTo(HaveOccurred())
		var fields map[string]any
		Expect(json.Unmarshal(encoded, &fields)).To(Succeed())
		Expect(fields).NotTo(HaveKey("password_hash"))
		Expect(fields).NotTo(HaveKey("password_salt"))
		Expect(fields).NotTo(HaveKey("PasswordHash"))
		Expect(fields).NotTo(HaveKey("PasswordSalt"))
		Expect(fields).To(HaveKeyWithValue("public_name", "Carol"))

		_, err = svc.GetByUsername(ctx, "nobody")
		Expect(errors.Is(err, auth.ErrNotFound)).To(BeTrue())
	})

	It("treats concurrent logouts of the same token as idempotent", func() {
		_, err := svc.Register(ctx, "dave", "pw", "")
		Expect(err).NotTo(HaveOccurred())
		token, err := svc.Login(ctx, "dave", "pw")
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				errs <- svc.Logout(ctx, token)
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			Expect(err).NotTo(HaveOccurred())
		}

		var rows int
		Expect(env.pool.QueryRow(ctx, `SELECT count(*) FROM revoked_tokens`).Scan(&rows)).To(Succeed())
		Expect(rows).To(Equal(1))
	})

	It("registers distinct users concurrently", func() {
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				_, err := svc.Register(ctx, fmt.Sprintf("user_%d", i), "pw", "")
				Expect(err).NotTo(HaveOccurred())
			}(i)
		}
		wg.Wait()

		for i := 0; i < 5; i++ {
			exists, err := svc.UserExists(ctx, fmt.Sprintf("user_%d", i))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		}
	})

	It("upgrades legacy credentials on login", func() {
		hash, salt, err := auth.NewHMACHasher().Hash("legacy-pw")
		Expect(err).NotTo(HaveOccurred())
		legacy, err := auth.NewAccount("erin", "", hash, salt)
		Expect(err).NotTo(HaveOccurred())
		accounts := authpg.NewAccountRepository(env.pool)
		Expect(accounts.Create(ctx, legacy)).To(Succeed())

		_, err = svc.Login(ctx, "erin", "legacy-pw")
		Expect(err).NotTo(HaveOccurred())

		stored, err := accounts.GetByUsername(ctx, "erin")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.PasswordHash).NotTo(Equal(hash))
		Expect(auth.NewArgon2idHasher().NeedsUpgrade(stored.PasswordHash, stored.PasswordSalt)).To(BeFalse())

		_, err = svc.Login(ctx, "erin", "legacy-pw")
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Revocation purge", func() {
	It("purges records once their horizon has passed", func() {
		ctx := context.Background()
		env.reset()

		now := time.Now()
		clock := func() time.Time { return now }
		ledger := authpg.NewRevocationRepositoryWithClock(env.pool, clock)
		svc := env.newService(ledger, auth.WithClock(clock))

		_, err := svc.Register(ctx, "frank", "pw", "")
		Expect(err).NotTo(HaveOccurred())
		token, err := svc.Login(ctx, "frank", "pw")
		Expect(err).NotTo(HaveOccurred())
		Expect(svc.Logout(ctx, token)).To(Succeed())

		purger := auth.NewRevocationPurger(ledger, time.Hour)
		purged, err := purger.RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(purged).To(BeZero(), "record is inside its horizon")

		now = now.Add(auth.RevocationHorizon + time.Second)
		purged, err = purger.RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(purged).To(Equal(int64(1)))
	})
})

var _ = Describe("Cached revocation ledger", func() {
	It("serves revocations written by another instance", func() {
		ctx := context.Background()
		env.reset()

		shared := authpg.NewRevocationRepository(env.pool)
		cached, err := cache.NewCachedLedger(ctx, shared, time.Minute)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { _ = cached.Close() })

		writer := env.newService(nil)
		reader := env.newService(cached)

		_, err = writer.Register(ctx, "grace", "pw", "")
		Expect(err).NotTo(HaveOccurred())
		token, err := writer.Login(ctx, "grace", "pw")
		Expect(err).NotTo(HaveOccurred())

		_, err = reader.Authorize(ctx, token)
		Expect(err).NotTo(HaveOccurred())

		Expect(writer.Logout(ctx, token)).To(Succeed())

		_, err = reader.Authorize(ctx, token)
		Expect(errutil.Code(err)).To(Equal(auth.CodeTokenRevoked))
		Expect(cached.Len()).To(Equal(1))
	})
})

var _ = Describe("Error codes", func() {
	It("surfaces an unreachable database as a persistence failure", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := env.newService(nil)
		_, err := svc.UserExists(ctx, "anyone")
		Expect(err).To(HaveOccurred())
		oopsErr, ok := oops.AsOops(err)
		Expect(ok).To(BeTrue())
		Expect(oopsErr.Code()).To(Equal(auth.CodePersistence))
	})
})
