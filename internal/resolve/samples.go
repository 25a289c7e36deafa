package resolve

// Samples are representative inputs seen in scraped feeds and pages. They
// feed the fixture generator and the tests; they are not used at runtime.
var Samples = []string{
	"Fri, 22 Mer 2019 10:00:00 +0900",
	"Thur, 2 Dec 2017 1:00:00 GMT",
	"Tues, 04 June 2013 15:00:00 +0900",
	"2024-01-01T12:00:00Z",
	"2024-01-01T12:00:00+00:00",
	"01 Jan 2024 12:00:00 GMT",
	"01 Jan 2024 12:00:00 +0000",
	"2024-01-01T12:00:00.123456Z",
	"January 1, 2024 12:00 PM",
	"01/01/24 12:00 PM",
	"01-Jan-24 12:00 PM",
	"01-01-2024 12:00 PM",
	"2024-01-01",
	"01/01/2024",
	"Jan 1, '24",
	"01-January-2024",
	"01/JAN/2024",
	"2024-01-01T12:00:00.123Z",
	"01-Jan-24T12:00:00Z",
	"20240101T120000Z",
	"24-01-01",
	"12:00 PM, January 1, 2024",
	"12:00 PM, 01/01/24",
	"12:00 PM, 01-Jan-24",
	"January 1st, 2024",
	"01-Jan-2024 12:00 PM EST",
	"01/01/24 12:00 PM -0500",
	"01-Jan-24 12:00 PM PDT",
	"Jan 1, '24 12:00 PM PDT",
	"2024年1月1日 12:00:00",
	"١ يناير، ٢٠٢٤ ١٢:٠٠ م",
	"2024/01/01 12:00:00",
	"01.01.24 12:00 PM",
	"01-01-24T12:00:00+00:00",
	"01/01/24 12:00:00 GMT",
	"2024年01月01日 12:00 PM",
}
