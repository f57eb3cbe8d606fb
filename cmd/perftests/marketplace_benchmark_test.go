package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	bidding "gig-marketplace/internal/bidService"
	gig "gig-marketplace/internal/gigService"
	hire "gig-marketplace/internal/hireService"
	model "gig-marketplace/internal/models"
	"gig-marketplace/internal/repository"
)

func seedGig(b *testing.B, repo *repository.MemoryRepo, gigID, ownerID string) {
	b.Helper()
	err := repo.CreateGig(context.Background(), model.Gig{
		GigID:       gigID,
		OwnerID:     ownerID,
		Title:       fmt.Sprintf("Benchmark gig %s", gigID),
		Description: "Independent benchmark gig",
		Budget:      100,
		Status:      model.GigOpen,
	})
	if err != nil {
		b.Fatalf("failed to seed gig: %v", err)
	}
}

// Benchmark 1: PlaceBid - Isolated Gigs (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBidService(repo)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		seedGig(b, repo, fmt.Sprintf("gig_%d", i), "owner")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		gigID := fmt.Sprintf("gig_%d", i)
		userID := fmt.Sprintf("user_%d", i)
		if _, err := svc.PlaceBid(ctx, gigID, userID, 90, "benchmark bid"); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Gig (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedGig(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBidService(repo)
	ctx := context.Background()

	seedGig(b, repo, "shared_gig_1", "owner")

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			n := atomic.AddInt64(&counter, 1)
			userID := fmt.Sprintf("user_parallel_%d", n)
			_, _ = svc.PlaceBid(ctx, "shared_gig_1", userID, 90, "benchmark bid")
		}
	})
}

// Benchmark 3: Hire - Isolated Gigs (Full Transition - Single Threaded)
func Benchmark_Hire_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	bidSvc := bidding.NewBidService(repo)
	hireSvc := hire.NewHireService(repo, nil)
	ctx := context.Background()

	bidIDs := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		gigID := fmt.Sprintf("gig_%d", i)
		seedGig(b, repo, gigID, "owner")

		// three competing bids per gig so the bulk rejection path is exercised
		for j := 0; j < 3; j++ {
			bid, err := bidSvc.PlaceBid(ctx, gigID, fmt.Sprintf("user_%d_%d", i, j), 90, "benchmark bid")
			if err != nil {
				b.Fatalf("failed to place bid: %v", err)
			}
			if j == 0 {
				bidIDs[i] = bid.BidID
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := hireSvc.Hire(ctx, bidIDs[i], "owner"); err != nil {
			b.Fatalf("failed to hire: %v", err)
		}
	}
}

// Benchmark 4: ListOpenGigs - keyword scan over a populated store
func Benchmark_ListOpenGigs(b *testing.B) {
	repo := repository.NewMemoryRepo()
	gigSvc := gig.NewGigService(repo)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		seedGig(b, repo, fmt.Sprintf("gig_%d", i), fmt.Sprintf("owner_%d", i%10))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := gigSvc.ListOpenGigs(ctx, "benchmark"); err != nil {
			b.Fatalf("failed to list gigs: %v", err)
		}
	}
}
