package db_test

import (
	"context"
	"fmt"

	"astralnexus/internal/db"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type Test struct {
	ID       string `gorm:"primaryKey"`
	Username string
	Score    int
}

var _ = Describe("Database", func() {
	var (
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		testDB, err = db.NewGormDB(db.DriverSQLite, dsn)
		Expect(err).NotTo(HaveOccurred())
		Expect(testDB.MigrateModels(&Test{})).To(Succeed())
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	Describe("NewGormDB", func() {
		It("should reject an unknown driver", func() {
			_, err := db.NewGormDB("oracle", "dsn")
			Expect(err).To(MatchError(db.ErrUnsupportedDriver))
		})
	})

	Describe("Ping", func() {
		It("should reach the database", func() {
			Expect(testDB.Ping(ctx)).To(Succeed())
		})
	})

	Describe("Save", func() {
		It("should insert a new record", func() {
			Expect(testDB.Save(ctx, &Test{ID: "1", Username: "alice", Score: 3})).To(Succeed())

			var got Test
			Expect(testDB.GetBy(ctx, "id", "1", &got)).To(Succeed())
			Expect(got.Username).To(Equal("alice"))
			Expect(got.Score).To(Equal(3))
		})

		It("should update a record with the same primary key", func() {
			Expect(testDB.Save(ctx, &Test{ID: "1", Username: "alice", Score: 3})).To(Succeed())
			Expect(testDB.Save(ctx, &Test{ID: "1", Username: "alice", Score: 9})).To(Succeed())

			var got Test
			Expect(testDB.GetBy(ctx, "id", "1", &got)).To(Succeed())
			Expect(got.Score).To(Equal(9))
		})

		It("should reject a non-pointer record", func() {
			err := testDB.Save(ctx, Test{ID: "2"})
			Expect(err).To(MatchError(ContainSubstring("must be pointer to a struct")))
		})
	})

	Describe("GetBy", func() {
		It("should return ErrNotFound for a missing record", func() {
			var got Test
			err := testDB.GetBy(ctx, "username", "nobody", &got)
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})
})
