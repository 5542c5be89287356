package benchmarks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/core/services"
)

func newUserStore() *services.Store[domain.User] {
	return services.NewStore(
		func(u domain.User) int64 { return u.ID },
		services.IndexSpec[domain.User]{
			Name: "username",
			Key:  func(u domain.User) string { return strings.ToLower(u.Username) },
		},
		services.IndexSpec[domain.User]{
			Name: "role",
			Key:  func(u domain.User) string { return string(u.Role) },
		},
	)
}

func seedUsers(n int) []domain.User {
	roles := []domain.UserRole{domain.RoleAdmin, domain.RoleManager, domain.RoleClerk}
	users := make([]domain.User, n)
	for i := range users {
		users[i] = domain.User{
			ID:       int64(i + 1),
			Username: fmt.Sprintf("user%05d", i),
			Email:    fmt.Sprintf("user%05d@example.com", i),
			Role:     roles[i%len(roles)],
		}
	}
	return users
}

func BenchmarkStoreGetByID(b *testing.B) {
	store := newUserStore()
	store.Initialize(seedUsers(10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.GetByID(int64(i%10_000 + 1))
	}
}

func BenchmarkStoreGetByKey(b *testing.B) {
	store := newUserStore()
	store.Initialize(seedUsers(10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.GetByKey("username", fmt.Sprintf("user%05d", i%10_000))
	}
}

func BenchmarkStoreGetAllByKey(b *testing.B) {
	store := newUserStore()
	store.Initialize(seedUsers(10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.GetAllByKey("role", string(domain.RoleClerk))
	}
}

func BenchmarkStoreUpdate(b *testing.B) {
	store := newUserStore()
	users := seedUsers(10_000)
	store.Initialize(users)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := users[i%len(users)]
		u.FullName = "Updated Name"
		_ = store.Update(u)
	}
}

func BenchmarkStoreInitialize(b *testing.B) {
	users := seedUsers(10_000)

	for _, size := range []int{100, 1_000, 10_000} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			store := newUserStore()
			for i := 0; i < b.N; i++ {
				store.Initialize(users[:size])
			}
		})
	}
}

func BenchmarkStoreSearch(b *testing.B) {
	store := newUserStore()
	store.Initialize(seedUsers(10_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Search(func(u domain.User) bool {
			return strings.HasPrefix(u.Username, "user00")
		})
	}
}

func BenchmarkStoreConcurrentReads(b *testing.B) {
	store := newUserStore()
	store.Initialize(seedUsers(10_000))

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = store.GetByID(int64(i%10_000 + 1))
			i++
		}
	})
}
