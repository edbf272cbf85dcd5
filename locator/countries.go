package locator

// KnownCountries is the set of country names the heuristic scan accepts as
// confirmation that it has found a genuine team block, rather than an
// arbitrary run of bytes that happens to decode as text.
var KnownCountries = map[string]bool{
	"ENGLAND": true, "SCOTLAND": true, "WALES": true, "NORTHERN IRELAND": true,
	"REPUBLIC OF IRELAND": true, "FRANCE": true, "GERMANY": true, "ITALY": true,
	"SPAIN": true, "HOLLAND": true, "BELGIUM": true, "PORTUGAL": true,
	"AUSTRIA": true, "SWITZERLAND": true, "SWEDEN": true, "NORWAY": true,
	"DENMARK": true, "FINLAND": true, "GREECE": true, "TURKEY": true,
	"ROMANIA": true, "BULGARIA": true, "HUNGARY": true, "POLAND": true,
	"CZECHOSLOVAKIA": true, "CROATIA": true, "SLOVENIA": true, "RUSSIA": true,
	"UKRAINE": true, "ALBANIA": true, "CYPRUS": true, "ICELAND": true,
	"ISRAEL": true, "LUXEMBOURG": true, "MALTA": true, "ESTONIA": true,
	"LATVIA": true, "LITHUANIA": true, "FAEROE ISLES": true,
}
