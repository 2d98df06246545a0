package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "intraship server address")
	count := flag.Int("count", 100, "number of requests to send")
	flag.Parse()

	productCodes := []string{"EPN", "EXP", "BPI"}

	for index := 0; index < *count; index++ {
		items := []map[string]any{
			{"weight": 2.5, "length": 30, "width": 20, "height": 10},
		}
		if index%2 == 0 {
			items = append(items, map[string]any{"weight": 1.2, "length": 20, "width": 15, "height": 5})
		}

		body, err := json.Marshal(map[string]any{
			"shipment_date":      time.Now().Format("2006-01-02"),
			"product_code":       productCodes[index%len(productCodes)],
			"customer_reference": fmt.Sprintf("order_%d", index),
			"sender_address": map[string]any{
				"company":      "Sender GmbH",
				"street":       "Hauptstrasse",
				"house_number": "1",
				"zip":          "10115",
				"city":         "Berlin",
				"country_code": "DE",
			},
			"receiver_address": map[string]any{
				"first_name":   fmt.Sprintf("user_%d", index),
				"last_name":    "Receiver",
				"street":       "Nebenstrasse",
				"house_number": fmt.Sprintf("%d", index+1),
				"zip":          "80331",
				"city":         "Muenchen",
				"country_code": "DE",
			},
			"shipment_items": items,
		})
		if err != nil {
			panic(err)
		}

		resp, err := http.Post(*addr+"/shipments/render", "application/json", bytes.NewReader(body))
		if err != nil {
			panic(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			panic(fmt.Errorf("resp.StatusCode (%d) != 200", resp.StatusCode))
		}

		time.Sleep(200 * time.Millisecond)
	}
}
