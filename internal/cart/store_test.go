package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iStefan20/YumTum/internal/domain"
)

var (
	mici = domain.Dish{ID: "3", Name: "Mici", Price: "£7.00", Category: "Grill", Country: "Romania"}
	gyro = domain.Dish{ID: "39", Name: "Gyros", Price: "£7.50", Category: "Street Food", Country: "Greece"}
)

func TestStore_AddItem_NewAndIncrement(t *testing.T) {
	s := NewStore()

	s.AddItem(mici)
	s.AddItem(gyro)
	s.AddItem(mici)
	s.AddItem(mici)

	snap := s.Snapshot()
	assert.Len(t, snap.Lines, 2)
	assert.Equal(t, "3", snap.Lines[0].ID)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, "39", snap.Lines[1].ID)
	assert.Equal(t, 1, snap.Lines[1].Quantity)
}

func TestStore_AddItem_NoDuplicateIDs(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.AddItem(mici)
		s.AddItem(gyro)
	}

	seen := make(map[string]bool)
	for _, line := range s.Snapshot().Lines {
		assert.False(t, seen[line.ID], "duplicate line id %s", line.ID)
		seen[line.ID] = true
	}
}

func TestStore_UpdateQuantity_ClampsAtOne(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)
	s.UpdateQuantity("3", 4)
	assert.Equal(t, 5, s.Snapshot().Lines[0].Quantity)

	// Decrementing below 1 clamps; the line is never removed this way.
	s.UpdateQuantity("3", -100)
	snap := s.Snapshot()
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestStore_UpdateQuantity_UnknownIDIgnored(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)
	s.UpdateQuantity("missing", 3)
	assert.Len(t, s.Snapshot().Lines, 1)
	assert.Equal(t, 1, s.Snapshot().Lines[0].Quantity)
}

func TestStore_RemoveItem(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)
	s.AddItem(gyro)

	s.RemoveItem("3")
	snap := s.Snapshot()
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, "39", snap.Lines[0].ID)

	// Absent id is a no-op, not an error
	s.RemoveItem("3")
	assert.Len(t, s.Snapshot().Lines, 1)
}

func TestStore_SubtotalAndTotal(t *testing.T) {
	s := NewStore()
	s.AddItem(mici) // 7.00
	s.AddItem(gyro) // 7.50
	s.AddItem(gyro) // 7.50

	assert.InDelta(t, 22.0, s.Subtotal(), 0.0001)
	assert.InDelta(t, 22.0, s.Total(), 0.0001)

	s.ApplyDiscount(0.10, "10% Off")
	assert.InDelta(t, 22.0, s.Subtotal(), 0.0001)
	assert.InDelta(t, 19.8, s.Total(), 0.0001)
}

func TestStore_ApplyDiscount_LastWriterWins(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)

	s.ApplyDiscount(0.10, "10% Off")
	s.ApplyDiscount(0.20, "20% Off")
	snap := s.Snapshot()
	assert.Equal(t, 0.20, snap.DiscountFraction)
	assert.Equal(t, "20% Off", snap.DiscountLabel)
}

func TestStore_ApplyDiscount_ZeroClears(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)
	s.ApplyDiscount(0.15, "15% Off")

	s.ApplyDiscount(0, "")
	snap := s.Snapshot()
	assert.Zero(t, snap.DiscountFraction)
	assert.Empty(t, snap.DiscountLabel)
	assert.InDelta(t, s.Subtotal(), s.Total(), 0.0001)

	// Label is forced empty even if the caller forgets the convention
	s.ApplyDiscount(0, "stale label")
	assert.Empty(t, s.Snapshot().DiscountLabel)
}

func TestStore_Clear_ResetsLinesAndDiscount(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)
	s.ApplyDiscount(0.10, "10% Off")

	s.Clear()
	snap := s.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.DiscountFraction)
	assert.Empty(t, snap.DiscountLabel)
}

func TestStore_NotifiesSubscribersOnEveryMutation(t *testing.T) {
	s := NewStore()
	var got []domain.CartSnapshot
	s.Subscribe(func(snap domain.CartSnapshot) {
		got = append(got, snap)
	})

	s.AddItem(mici)
	s.UpdateQuantity("3", 1)
	s.ApplyDiscount(0.10, "10% Off")
	s.RemoveItem("3")
	s.Clear()

	assert.Len(t, got, 5)
	assert.Equal(t, 2, got[1].Lines[0].Quantity)
	assert.Empty(t, got[4].Lines)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.AddItem(mici)

	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, s.Snapshot().Lines[0].Quantity)
}
