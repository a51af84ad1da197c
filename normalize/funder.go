package normalize

// funderPrefixes maps the first two characters of a national grant
// project id to the funding agency slug used by the funders vocabulary.
var funderPrefixes = map[string]string{
	"1A": "MZ0", "1B": "MZE", "1C": "MZP", "1D": "MZP", "1E": "AV0",
	"1F": "MD0", "1G": "MZE", "1H": "MPO", "1I": "MZP", "1J": "MPS",
	"1K": "MSM", "1L": "MSM", "1M": "MSM", "1N": "MSM", "1P": "MSM",
	"1Q": "AV0", "1R": "MZE",
	"2A": "MPO", "2B": "MSM", "2C": "MSM", "2D": "MSM", "2E": "MSM",
	"2F": "MSM", "2G": "MSM",
	"7A": "MSM", "7B": "MSM", "7C": "MSM", "7D": "MSM", "7E": "MSM",
	"7F": "MSM", "7G": "MSM", "7H": "MSM",
	"8A": "MSM", "8B": "MSM", "8C": "MSM", "8D": "MSM", "8E": "MSM",
	"8F": "MSM", "8G": "MSM", "8H": "MSM", "8I": "MSM", "8J": "MSM",
	"8X": "MSM",
	"AA": "CBU", "AB": "CBU",
	"BI": "BIS",
	"CA": "MD0", "CB": "MD0", "CC": "MD0", "CD": "MI0", "CE": "MD0",
	"CF": "MI0", "CG": "MD0", "CI": "MD0", "CK": "TA0",
	"DA": "MK0", "DB": "MK0", "DC": "MK0", "DD": "MK0", "DE": "MK0",
	"DF": "MK0", "DG": "MK0", "DH": "MK0", "DM": "MK0",
	"EA": "MPO", "EB": "MPO", "EC": "MPO", "ED": "MSM", "EE": "MSM",
	"EF": "MSM", "EG": "MPO", "EP": "MZE",
	"FA": "MPO", "FB": "MPO", "FC": "MPO", "FD": "MPO", "FE": "MPO",
	"FF": "MPO", "FI": "MPO", "FR": "MPO", "FT": "MPO", "FV": "MPO",
	"FW": "TA0", "FX": "MPO",
	"GA": "GA0", "GB": "GA0", "GC": "GA0", "GD": "GA0", "GE": "GA0",
	"GF": "GA0", "GH": "GA0", "GJ": "GA0", "GK": "MK0", "GM": "GA0",
	"GN": "GA0", "GP": "GA0", "GS": "GA0", "GV": "GA0", "GX": "GA0",
	"HA": "MPS", "HB": "MPS", "HC": "MPS", "HR": "MPS", "HS": "MPS",
	"IA": "AV0", "IB": "AV0", "IC": "AV0", "ID": "MSM", "IE": "MZE",
	"IN": "MSM", "IP": "AV0", "IS": "MSM", "IZ": "MZ0",
	"JA": "SUJ", "JB": "SUJ", "JC": "SUJ",
	"KA": "AV0", "KJ": "AV0", "KK": "MK0", "KS": "AV0", "KZ": "MK0",
	"LA": "MSM", "LB": "MSM", "LC": "MSM", "LD": "MSM", "LE": "MSM",
	"LF": "MSM", "LG": "MSM", "LH": "MSM", "LI": "MSM", "LJ": "MSM",
	"LK": "MSM", "LL": "MSM", "LM": "MSM", "LN": "MSM", "LO": "MSM",
	"LP": "MSM", "LQ": "MSM", "LR": "MSM", "LS": "MSM", "LT": "MSM",
	"LU": "MSM", "LX": "MSM", "LZ": "MSM",
	"MC": "MSM", "ME": "MSM", "MH": "MH0", "MI": "URV", "MJ": "URV",
	"MO": "MO0", "MP": "MPO", "MR": "MZP", "MS": "MSM",
	"NA": "MZ0", "NB": "MZ0", "NC": "MZ0", "ND": "MZ0", "NE": "MZ0",
	"NF": "MZ0", "NG": "MZ0", "NH": "MZ0", "NI": "MZ0", "NJ": "MZ0",
	"NK": "MZ0", "NL": "MZ0", "NM": "MZ0", "NN": "MZ0", "NO": "MZ0",
	"NR": "MZ0", "NS": "MZ0", "NT": "MZ0", "NU": "MZ0", "NV": "MZ0",
	"OB": "MO0", "OC": "MSM", "OD": "MO0", "OE": "MSM", "OF": "MO0",
	"OK": "MSM", "ON": "MO0", "OP": "MO0", "OR": "MO0", "OS": "MO0",
	"OT": "MO0", "OU": "MSM", "OV": "MO0", "OW": "MO0", "OY": "MO0",
	"PD": "MD0", "PE": "MH0", "PG": "MSM", "PI": "MH0", "PK": "MK0",
	"PL": "MZ0", "PO": "MH0", "PR": "MPO", "PT": "MH0", "PV": "MSM",
	"PZ": "MH0",
	"QA": "MZE", "QB": "MZE", "QC": "MZE", "QD": "MZE", "QE": "MZE",
	"QF": "MZE", "QG": "MZE", "QH": "MZE", "QI": "MZE", "QJ": "MZE",
	"QK": "MZE",
	"RB": "MZV", "RC": "MS0", "RD": "MS0", "RE": "MZE", "RH": "MH0",
	"RK": "MK0", "RM": "MZV", "RN": "MV0", "RO": "MO0", "RP": "MPO",
	"RR": "MZP", "RS": "MSM", "RV": "MPS", "RZ": "MZ0",
	"SA": "MZP", "SB": "MZP", "SC": "MZP", "SD": "MZP", "SE": "MZP",
	"SF": "MZP", "SG": "MZP", "SH": "MZP", "SI": "MZP", "SJ": "MZP",
	"SK": "MZP", "SL": "MZP", "SM": "MZP", "SN": "MZP", "SP": "MZP",
	"SS": "TA0", "ST": "NBU", "SU": "NBU", "SZ": "MZP",
	"TA": "TA0", "TB": "TA0", "TC": "MPO", "TD": "TA0", "TE": "TA0",
	"TF": "TA0", "TG": "TA0", "TH": "TA0", "TI": "TA0", "TJ": "TA0",
	"TK": "TA0", "TL": "TA0", "TM": "TA0", "TN": "TA0", "TO": "TA0",
	"TP": "TA0", "TR": "MPO",
	"UA": "KUL", "UB": "KHK", "UC": "KHK", "UD": "KLI", "UE": "KKV",
	"UF": "KHP", "UH": "KHP", "US": "MV0",
	"VA": "MV0", "VB": "MV0", "VC": "MV0", "VD": "MV0", "VE": "MV0",
	"VF": "MV0", "VG": "MV0", "VH": "MV0", "VI": "MV0", "VJ": "MV0",
	"VS": "MSM", "VV": "MSM", "VZ": "MSM",
	"WA": "MMR", "WB": "MMR", "WD": "MMR", "WE": "MMR",
	"YA": "MI0",
	"ZK": "CUZ", "ZO": "MZP", "ZZ": "MZP",
}

// FunderSlug maps a project identifier to its funding agency slug via the
// two-character prefix table. An empty result means the prefix is not a
// known funder; callers must still confirm the slug against the live
// funder vocabulary before using it.
func FunderSlug(projectID string) string {
	if len(projectID) < 2 {
		return ""
	}
	return funderPrefixes[projectID[:2]]
}
