package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dodamdoor/casebook/api/internal/public/domain"
)

func TestNormalizeSpecVariants(t *testing.T) {
	door := domain.DoorSpec{
		ManagementID: "M-1",
		Product:      "ABS도어",
		Detail:       "양개",
		Glass:        "망입",
		Color:        "화이트",
		Location:     "안방",
	}
	item := door.Normalize()
	require.Equal(t, domain.ItemTypeDoor, item.Type)
	require.Equal(t, "안방", item.Location)
	require.Empty(t, item.Grade)
	require.Equal(t, "ABS도어", item.Options.Item)
	require.Equal(t, "망입", item.Options.Glass)

	sliding := domain.SingleSlidingSpec{
		ManagementID: "M-1",
		Location:     "현관",
		Grade:        "프리미엄",
		Design:       "3등분할",
		Glass:        "브론즈",
		Handle:       "매립",
		Color:        "블랙",
	}
	slidingItem := sliding.Normalize()
	require.Equal(t, domain.ItemTypeSingleSliding, slidingItem.Type)
	require.Equal(t, "프리미엄", slidingItem.Grade)
	require.Equal(t, "매립", slidingItem.Options.Handle)
	require.Empty(t, slidingItem.Options.Item)

	partition := domain.DoubleSlidingSpec{
		ManagementID: "M-1",
		Location:     "거실",
		Grade:        "일반",
		Design:       "3분할",
		Color:        "블랙",
		Glass:        "투명",
	}
	partitionItem := partition.Normalize()
	require.Equal(t, domain.ItemTypeDoubleSliding, partitionItem.Type)
	require.Equal(t, "거실", partitionItem.Location)
	require.Equal(t, "투명", partitionItem.Options.Glass)
}

func TestNormalizeEstimateLines(t *testing.T) {
	general := domain.GeneralEstimateLine{
		ConstructionID: "C-1",
		Item:           "3연동 중문",
		UnitPrice:      "1,200,000원",
		Quantity:       "1",
	}
	item := general.Normalize()
	require.Equal(t, domain.SourceGeneral, item.Source)
	require.Equal(t, 1200000, item.UnitPrice)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, 1200000, item.Amount)

	online := domain.OnlineEstimateLine{
		ConstructionID: "C-1",
		Category:       "옵션",
		OptionItem:     "손잡이 변경",
		UnitPrice:      "50000",
		Quantity:       "2",
	}
	onlineItem := online.Normalize()
	require.Equal(t, domain.SourceOnline, onlineItem.Source)
	require.Equal(t, "옵션 - 손잡이 변경", onlineItem.Item)
	require.Equal(t, 100000, onlineItem.Amount)

	blank := domain.GeneralEstimateLine{ConstructionID: "C-1", Item: "실측비"}
	blankItem := blank.Normalize()
	require.Equal(t, 0, blankItem.UnitPrice)
	require.Equal(t, 1, blankItem.Quantity)
	require.Equal(t, 0, blankItem.Amount)
}
