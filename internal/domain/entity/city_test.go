package entity

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ City = (*SmallCity)(nil)
	_ City = (*BigCity)(nil)
)

func TestSmallCity(t *testing.T) {
	cases := []struct {
		name         string
		weatherState int
	}{
		{"Smallville", 1},
		{"Rosenheim", 0},
		{"", 2},
		{"Nowhere", 42},
		{"Minus", -3},
	}

	for _, tc := range cases {
		city := NewSmallCity(tc.name, tc.weatherState)

		assert.Equal(t, tc.name, city.Name())
		assert.Equal(t, tc.weatherState, city.WeatherState())
		assert.Equal(t, "<p>It is"+strconv.Itoa(tc.weatherState)+"in"+tc.name+".</p>", city.Describe())
		assert.Equal(t, ": weather_small_city"+tc.name+".html", city.ResourceName())
	}

	assert.Equal(t, "<p>It is1inSmallville.</p>", NewSmallCity("Smallville", 1).Describe())
}

func TestBigCity(t *testing.T) {
	t.Run("discarded districts render empty", func(t *testing.T) {
		for _, districts := range []string{"", "Altstadt", "Altstadt, Haidhausen, Schwabing"} {
			city := NewBigCity(districts, "Munich", 2, DiscardDistricts())

			assert.Empty(t, city.Districts())
			assert.Equal(t,
				"<p>It is2inMunich.</p> <p>This also applies to[],[],[][...] and[].</p>",
				city.Describe())
		}
	})

	t.Run("stored districts fill every slot", func(t *testing.T) {
		city := NewBigCity("Altstadt, Haidhausen,,Schwabing ", "Munich", 0)

		assert.Equal(t, []string{"Altstadt", "Haidhausen", "Schwabing"}, city.Districts())
		list := "[Altstadt, Haidhausen, Schwabing]"
		assert.Equal(t,
			"<p>It is0inMunich.</p> <p>This also applies to"+list+","+list+","+list+"[...] and"+list+".</p>",
			city.Describe())
	})

	t.Run("empty districts argument", func(t *testing.T) {
		city := NewBigCity("", "Berlin", 1)

		assert.Empty(t, city.Districts())
		assert.Equal(t,
			"<p>It is1inBerlin.</p> <p>This also applies to[],[],[][...] and[].</p>",
			city.Describe())
	})

	t.Run("custom separator", func(t *testing.T) {
		city := NewBigCity("Mitte;Pankow", "Berlin", 1, WithDistrictSeparator(";"))
		assert.Equal(t, []string{"Mitte", "Pankow"}, city.Districts())
	})

	t.Run("districts copy is detached", func(t *testing.T) {
		city := NewBigCity("Mitte", "Berlin", 1)
		districts := city.Districts()
		districts[0] = "Changed"
		assert.Equal(t, []string{"Mitte"}, city.Districts())
	})

	t.Run("resource name", func(t *testing.T) {
		for _, name := range []string{"Munich", "", "New York"} {
			city := NewBigCity("ignored", name, 0, DiscardDistricts())
			assert.Equal(t, "weather_big_city_"+name+".html", city.ResourceName())
		}
	})
}

func TestCityNames(t *testing.T) {
	t.Run("per instance by default", func(t *testing.T) {
		first := NewSmallCity("A", 0)
		second := NewSmallCity("B", 1)

		assert.Equal(t, "A", first.Name())
		assert.Equal(t, "B", second.Name())
	})

	t.Run("shared register keeps the last name", func(t *testing.T) {
		register := NewSharedName()
		first := NewSmallCity("A", 0, WithSharedName(register))
		second := NewSmallCity("B", 1, WithSharedName(register))

		assert.Equal(t, "B", first.Name())
		assert.Equal(t, "B", second.Name())
		assert.Equal(t, 0, first.WeatherState())
		assert.Equal(t, "<p>It is0inB.</p>", first.Describe())
	})

	t.Run("shared register spans variants", func(t *testing.T) {
		register := NewSharedName()
		small := NewSmallCity("Smallville", 0, WithSharedName(register))
		NewBigCity("", "Metropolis", 2, WithSharedName(register))

		assert.Equal(t, ": weather_small_cityMetropolis.html", small.ResourceName())
	})

	t.Run("separate registers do not interfere", func(t *testing.T) {
		first := NewSmallCity("A", 0, WithSharedName(NewSharedName()))
		NewSmallCity("B", 0, WithSharedName(NewSharedName()))

		assert.Equal(t, "A", first.Name())
	})

	t.Run("concurrent writers", func(t *testing.T) {
		register := NewSharedName()
		names := []string{"A", "B", "C", "D"}

		var wg sync.WaitGroup
		for _, name := range names {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				NewSmallCity(name, 0, WithSharedName(register))
			}(name)
		}
		wg.Wait()

		assert.Contains(t, names, register.Name())
	})

	t.Run("empty register", func(t *testing.T) {
		assert.Equal(t, "", NewSharedName().Name())
	})
}
