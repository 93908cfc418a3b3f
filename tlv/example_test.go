package tlv_test

import (
	"fmt"

	"github.com/unkn0wn-root/dhwire/tlv"
)

func ExampleEncode() {
	b := tlv.Encode(tlv.List{{Type: 1, Value: []byte("AB")}})
	fmt.Printf("% x\n", b)
	// Output: 00 01 00 00 00 02 41 42
}

func ExampleDecode() {
	items, err := tlv.Decode([]byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x41, 0x42})
	if err != nil {
		fmt.Println(err)
		return
	}
	v, ok := items.Find(1)
	fmt.Println(len(items), string(v), ok)
	// Output: 1 AB true
}
