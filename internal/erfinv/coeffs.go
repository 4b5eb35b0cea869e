package erfinv

import (
	"encoding/binary"
	"math"
)

// FastTable holds the rational-expansion coefficients for the fast scheme.
// A and B are the central-region numerator/denominator (|y| <= 0.7), C and D
// the tail numerator/denominator. Constant term first in every array.
type FastTable struct {
	A [4]float32
	B [4]float32
	C [4]float32
	D [2]float32
}

// PreciseTable holds the 7-region rational coefficients for the precise
// scheme. Row k of P and Q belongs to region k; rows are padded with trailing
// zeros to a fixed 11 columns, and the evaluator only reads the leading
// pDegree[k]/qDegree[k] entries of each row.
type PreciseTable struct {
	Y [7]float32
	P [7][11]float32
	Q [7][11]float32
}

var fastTable = FastTable{
	A: [4]float32{0.886226899, -1.645349621, 0.914624893, -0.140543331},
	B: [4]float32{-2.118377725, 1.442710462, -0.329097515, 0.012229801},
	C: [4]float32{-1.970840454, -1.624906493, 3.429567803, 1.641345311},
	D: [2]float32{3.543889200, 1.637067800},
}

// Region order: p <= 0.5, q >= 0.25, then the sqrt(-ln q) sub-regions
// x < 3, x < 6, x < 18, x < 44 and the final open region, recentered at
// 1.125, 3, 6, 18 and 44 respectively.
var preciseTable = PreciseTable{
	Y: [7]float32{
		0.0891314744949340820313,
		2.249481201171875,
		0.807220458984375,
		0.93995571136474609375,
		0.98362827301025390625,
		0.99714565277099609375,
		0.99941349029541015625,
	},
	P: [7][11]float32{
		{
			-0.000508781949658280665617, -0.00836874819741736770379,
			0.0334806625409744615033, -0.0126926147662974029034,
			-0.0365637971411762664006, 0.0219878681111168899165,
			0.00822687874676915743155, -0.00538772965071242932965,
		},
		{
			-0.202433508355938759655, 0.105264680699391713268,
			8.37050328343119927838, 17.6447298408374015486,
			-18.8510648058714251895, -44.6382324441786960818,
			17.445385985570866523, 21.1294655448340526258,
			-3.67192254707729348546,
		},
		{
			-0.131102781679951906451, -0.163794047193317060787,
			0.117030156341995252019, 0.387079738972604337464,
			0.337785538912035898924, 0.142869534408157156766,
			0.0290157910005329060432, 0.00214558995388805277169,
			-0.679465575181126350155e-6, 0.285225331782217055858e-7,
			-0.681149956853776992068e-9,
		},
		{
			-0.0350353787183177984712, -0.00222426529213447927281,
			0.0185573306514231072324, 0.00950804701325919603619,
			0.00187123492819559223345, 0.000157544617424960554631,
			0.460469890584317994083e-5, -0.230404776911882601748e-9,
			0.266339227425782031962e-11,
		},
		{
			-0.0167431005076633737133, -0.00112951438745580278863,
			0.00105628862152492910091, 0.000209386317487588078668,
			0.149624783758342370182e-4, 0.449696789927706453732e-6,
			0.462596163522878599135e-8, -0.281128735628831791805e-13,
			0.99055709973310326855e-16,
		},
		{
			-0.0024978212791898131227, -0.779190719229053954292e-5,
			0.254723037413027451874e-4, 0.162397777342510920873e-5,
			0.396341011304801168516e-7, 0.411632831190944208473e-9,
			0.145596286718675035587e-11, -0.116765012397184275695e-17,
		},
		{
			-0.000539042911019078575891, -0.28398759004727721098e-6,
			0.899465114892291446442e-6, 0.229345859265920864296e-7,
			0.225561444863500149219e-9, 0.947846627503022684216e-12,
			0.135880130108924861008e-14, -0.348890393399948882918e-21,
		},
	},
	Q: [7][11]float32{
		{
			1, -0.970005043303290640362, -1.56574558234175846809,
			1.56221558398423026363, 0.662328840472002992063,
			-0.71228902341542847553, -0.0527396382340099713954,
			0.0795283687341571680018, -0.00233393759374190016776,
			0.000886216390456424707504,
		},
		{
			1, 6.24264124854247537712, 3.9713437953343869095,
			-28.6608180499800029974, -20.1432634680485188801,
			48.5609213108739935468, 10.8268667355460159008,
			-22.6436933413139721736, 1.72114765761200282724,
		},
		{
			1, 3.46625407242567245975, 5.38168345707006855425,
			4.77846592945843778382, 2.59301921623620271374,
			0.848854343457902036425, 0.152264338295331783612,
			0.01105924229346489121,
		},
		{
			1, 1.3653349817554063097, 0.762059164553623404043,
			0.220091105764131249824, 0.0341589143670947727934,
			0.00263861676657015992959, 0.764675292302794483503e-4,
		},
		{
			1, 0.591429344886417493481, 0.138151865749083321638,
			0.0160746087093676504695, 0.000964011807005165528527,
			0.275335474764726041141e-4, 0.282243172016108031869e-6,
		},
		{
			1, 0.207123112214422517181, 0.0169410838120975906478,
			0.000690538265622684595676, 0.145007359818232637924e-4,
			0.144437756628144157666e-6, 0.509761276599778486139e-9,
		},
		{
			1, 0.0845746234001899436914, 0.00282092984726264681981,
			0.468292921940894236786e-4, 0.399968812193862100054e-6,
			0.161809290887904476097e-8, 0.231558608310259605225e-11,
		},
	},
}

// pDegree and qDegree are the non-zero-padded coefficient counts per region.
// Trailing zero padding in the table must never be fed to the Horner loop.
var (
	pDegree = [7]int{8, 9, 11, 9, 9, 8, 8}
	qDegree = [7]int{10, 9, 8, 7, 7, 7, 7}
)

// FastCoeffs returns the fast-scheme coefficient table.
func FastCoeffs() FastTable {
	return fastTable
}

// PreciseCoeffs returns the precise-scheme coefficient table.
func PreciseCoeffs() PreciseTable {
	return preciseTable
}

// PackFast serializes the fast table for the fast kernel's uniform buffer:
// four vec4<f32> fields (a, b, c, d), with d zero-padded to four lanes.
// Little-endian, 64 bytes, already 16-byte aligned.
func PackFast() []byte {
	buf := make([]byte, 0, 64)
	buf = appendF32(buf, fastTable.A[:]...)
	buf = appendF32(buf, fastTable.B[:]...)
	buf = appendF32(buf, fastTable.C[:]...)
	buf = appendF32(buf, fastTable.D[:]...)
	buf = appendF32(buf, 0, 0) // pad d to vec4
	return buf
}

// PackPrecise serializes the precise table for the precise kernel's storage
// buffer: y[7], then p and q as row-major 7x11 float arrays. Little-endian,
// 644 bytes.
func PackPrecise() []byte {
	buf := make([]byte, 0, 4*(7+77+77))
	buf = appendF32(buf, preciseTable.Y[:]...)
	for k := range preciseTable.P {
		buf = appendF32(buf, preciseTable.P[k][:]...)
	}
	for k := range preciseTable.Q {
		buf = appendF32(buf, preciseTable.Q[k][:]...)
	}
	return buf
}

func appendF32(buf []byte, vals ...float32) []byte {
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}
