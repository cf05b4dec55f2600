package envelope

// Observed strength bounds per posture/force code, flattened in
// {height, anterior-posterior, superior-inferior, medial-lateral} order
// with each code offset by +1. The 9999/-9999 pairs mark combinations with
// no empirical observations.

var minTable = [tableSize]float64{
	51.3, 49.9, 49.9, 51.3, 51.3, 49.9, 51.3, 49.9, 49.9,
	51.3, 64.3, 49.9, 72.3, 9999.0, 49.9, 51.3, 72.3, 49.9,
	52.9, 49.9, 49.9, 52.9, 52.9, 49.9, 52.9, 49.9, 49.9,
	47.8, 47.1, 47.1, 47.8, 47.8, 47.1, 47.8, 47.1, 47.1,
	47.8, 64.3, 47.1, 68.9, 9999.0, 53.1, 47.8, 72.3, 47.1,
	52.9, 51.4, 51.4, 52.9, 52.9, 51.4, 52.9, 51.4, 51.4,
	44.2, 44.2, 44.2, 44.2, 44.2, 44.2, 44.2, 44.2, 44.2,
	44.2, 64.3, 44.2, 65.5, 9999.0, 56.3, 44.2, 72.3, 44.2,
	52.9, 52.9, 52.9, 52.9, 52.9, 52.9, 52.9, 52.9, 52.9,
}

var maxTable = [tableSize]float64{
	223.2, 223.2, 223.2, 223.2, 223.2, 223.2, 223.2, 223.2, 223.2,
	223.2, 120.0, 223.2, 133.4, -9999.0, 99.3, 223.2, 125.7, 223.2,
	184.1, 184.1, 184.1, 184.1, 184.1, 184.1, 184.1, 184.1, 184.1,
	220.5, 220.5, 220.5, 220.5, 199.6, 220.5, 210.4, 210.4, 199.6,
	220.5, 149.8, 220.5, 165.5, -9999.0, 134.7, 210.4, 128.0, 199.6,
	190.9, 190.9, 181.9, 190.9, 175.5, 181.9, 190.9, 190.9, 177.1,
	217.7, 217.7, 217.7, 217.7, 176.0, 217.7, 197.7, 197.7, 176.0,
	217.7, 179.7, 217.7, 197.7, -9999.0, 170.2, 197.7, 130.2, 176.0,
	197.7, 197.7, 179.7, 197.7, 166.9, 179.7, 197.7, 197.7, 170.2,
}