package encode_test

import (
	"fmt"
	"github.com/davejbax/go-dostime/internal/encode"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPackDate(t *testing.T) {
	cases := []struct {
		year, month, day int
		expected         uint16
	}{
		{1980, 1, 1, 0b0000000_0001_00001},
		{2015, 6, 30, 0b0100011_0110_11110},
		{2107, 12, 31, 0b1111111_1100_11111},
		// 2108 needs 8 bits of year offset; the top bit falls off the word
		{2108, 1, 1, 0b0000000_0001_00001},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, c.day), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, encode.PackDate(c.year, c.month, c.day), "Date should pack into the correct bits")
		})
	}
}

func TestPackTime(t *testing.T) {
	cases := []struct {
		hour, minute, second int
		expected             uint16
	}{
		{0, 0, 0, 0},
		{9, 32, 42, 0b01001_100000_10101},
		{9, 32, 43, 0b01001_100000_10101},
		{23, 59, 59, 0b10111_111011_11101},
		{0, 0, 1, 0},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%02d:%02d:%02d", c.hour, c.minute, c.second), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, encode.PackTime(c.hour, c.minute, c.second), "Time should pack into the correct bits")
		})
	}
}

func TestUnpackDate(t *testing.T) {
	year, month, day := encode.UnpackDate(0b0100011_0110_11110)
	assert.Equal(t, 2015, year)
	assert.Equal(t, 6, month)
	assert.Equal(t, 30, day)

	year, month, day = encode.UnpackDate(0)
	assert.Equal(t, 1980, year, "A zero date word should unpack to the epoch year")
	assert.Equal(t, 0, month, "Month should be returned unvalidated")
	assert.Equal(t, 0, day, "Day should be returned unvalidated")

	year, month, day = encode.UnpackDate(0xFFFF)
	assert.Equal(t, 2107, year)
	assert.Equal(t, 15, month)
	assert.Equal(t, 31, day)
}

func TestUnpackTime(t *testing.T) {
	hour, minute, second := encode.UnpackTime(0b01001_100000_10101)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 32, minute)
	assert.Equal(t, 42, second)

	hour, minute, second = encode.UnpackTime(0xFFFF)
	assert.Equal(t, 31, hour)
	assert.Equal(t, 63, minute)
	assert.Equal(t, 62, second, "Seconds field should be doubled without validation")
}

func TestPackUnpack_AllDates(t *testing.T) {
	for year := 1980; year <= 2107; year++ {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, 28} {
				y, m, d := encode.UnpackDate(encode.PackDate(year, month, day))
				if !assert.Equal(t, [3]int{year, month, day}, [3]int{y, m, d}) {
					return
				}
			}
		}
	}
}
