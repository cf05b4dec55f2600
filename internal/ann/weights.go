package ann

// Coefficients of the published arm strength network (18 inputs, 13
// hidden tanh nodes, 1 output). Externally derived constants; reproduced
// verbatim, never re-fit.

var inputOffset = [InputCount]float64{
	-0.414545454545454, 0.0, -0.2,
	0.0211450020362057, 0.0, 0.0,
	-1.0, -1.0, -1.0,
	-0.472, -0.507223002781194, -0.502147406224025,
	0.0, 0.0, 0.0,
	-0.472, -0.513552878519746, -0.532692720733278,
}

var inputGain = [InputCount]float64{
	2.24379895561358, 3.83316163963489, 2.88383550121662,
	3.98087191398701, 3.72108867096876, 3.54966137959164,
	1.0, 1.0, 1.0,
	2.10411881257562, 2.01858524925944, 1.9796783114071,
	3.73605743573157, 6.97906258154256, 13.037089326104,
	2.11864406779661, 1.93791628879275, 1.87263042612374,
}

var hiddenBias = [hiddenCount]float64{
	-0.249390763050715, -0.10025015166326, 0.095639766968571,
	0.101680098004717, 0.245807318675936, 1.19662080483264,
	-0.640172565850211, 0.504404303005015, -0.93451166621527,
	-0.088019829568919, -0.159442240916475, 0.250629528273471,
	0.365963496484053,
}

var hiddenWeight = [hiddenCount][InputCount]float64{
	{
		0.039646819703628, 0.513591491340921, -0.161515813146099,
		0.533578252115412, 0.392646814902843, 0.778436539431712,
		-0.0902124024580994, -0.0258725059064285, -0.318697613502621,
		0.140856800957881, -0.101503048541665, 0.223686526210991,
		0.0184515483855661, 0.284868615508886, 0.0966284464548426,
		0.274656219358713, 0.0259812747144168, 0.0879899598845416,
	},
	{
		-0.57461185082176, -0.502790496072571, -0.0346106776749378,
		0.340070951798129, 0.205595554528703, 0.30161421590845,
		0.300702071581198, -0.0492985615840271, -0.0303543877659774,
		0.877101705808236, -0.702543393817529, -0.700981028176362,
		-0.405589972848646, 0.322727262439193, 0.402087423498202,
		0.36102667652091, -0.199227823082548, -0.243078965926456,
	},
	{
		-0.0557183046775558, 0.0490560616244855, 0.0732281213380645,
		-0.380835627295554, 0.239434263622501, -0.472169037042715,
		0.410026892180424, 0.270450023262652, -0.255048487660998,
		0.144964927250323, -0.480974387636854, -0.25464064548719,
		0.346540433057983, 0.0708754262465684, 0.478843359844442,
		0.221589138837655, -0.477303036515125, -0.205067397138895,
	},
	{
		0.361061166575198, 0.224575437163625, 0.255430651860567,
		-0.462960699267879, -0.322970465675824, -0.578107248173005,
		0.213275708769899, 0.146543262423066, 0.037696955815714,
		0.497260107009201, -0.209860430441251, 0.679540614019861,
		0.162721107332146, 0.0219398458443392, -0.0658912388596506,
		0.433729348256109, 0.103958931821787, 0.751056060109292,
	},
	{
		0.270579786631551, -0.640256118596047, 0.0848149984877266,
		0.312552572714788, -0.478329255150915, 0.441809704033132,
		-0.0565511811718371, -0.508471868631359, 0.135186616981726,
		0.518786015605175, 0.0646553732286881, -0.294002000319956,
		-0.633727300633268, -0.20260637946755, 0.523993808421941,
		-0.134001361073672, -0.455420017601158, 0.452872722708069,
	},
	{
		-0.334996080489144, -0.435797855046105, 0.44653584822612,
		-0.0375157672679093, -0.706722936555619, 0.275600117230731,
		0.224837290145963, 0.329962884588779, 0.182225153323654,
		0.353343891291903, 0.518630360898189, -0.929926503366134,
		0.33212821139543, 0.497131200227084, -0.292483039275702,
		-0.162586462710471, 0.298395313023412, -0.012764588513738,
	},
	{
		-0.216484062699856, 0.498987988263144, 0.0217402997176494,
		0.114900495151622, 0.506269813755101, 0.231791166545911,
		0.610089916098936, 0.256714073592317, 0.0144884567379115,
		0.571051540259877, -0.294644393670026, 0.02659060780741,
		0.504831383796214, -0.379287782671021, -0.0454203902615683,
		0.180126911622024, 0.137230823369751, 0.0979411270189525,
	},
	{
		0.391344137450288, -0.0073456205366371, 0.175516441547456,
		0.0523500610091085, 0.124377962601678, -0.366672208613447,
		0.930884032088501, 0.69560576333736, -0.147702091995711,
		-0.150809894961722, 0.216701334932977, 0.172845079906393,
		-0.890271237525402, -0.0679969677511183, 0.447159165630526,
		-0.0896015899235026, 0.304472115801696, 0.488430586570295,
	},
	{
		-0.494676029105919, 0.193947788921245, -0.136406606023156,
		0.96420733321478, -0.382300793016679, -0.858187708793502,
		0.567824011366697, 0.0183348911745601, 0.0734474674712959,
		-0.303882437992681, -0.21055869249085, -0.643602336034446,
		-1.72074553978375, -0.10536750744788, 0.487180318093209,
		-0.407364957626559, 0.0790913947610594, 0.0685909517456038,
	},
	{
		-0.307277634754734, 0.125361686653238, 0.312949039304696,
		-0.684287526424876, 0.781259403895492, 0.397496714684898,
		0.152555034715304, 0.136171630626345, 0.0096179114168465,
		0.0172555667366513, -0.471407688998151, 0.225987951920536,
		-0.257828617542403, 0.352279999326942, -0.174534720362628,
		-0.040584709587445, -0.542632117103158, -0.143019456584893,
	},
	{
		-0.0791367309675499, -0.443801258547336, -0.47879948681689,
		0.575744343283865, 0.0303014125868337, -0.691300011104227,
		0.285227806442802, -0.0843136504085405, -0.262987814943362,
		-0.319012968325124, 0.0875081476021028, -0.542387052296897,
		0.214196345672213, 0.431114682584183, 0.0024140834105431,
		0.0722952121344132, -0.323896762504489, -0.482947436474304,
	},
	{
		0.141825962540854, 0.0760784150445575, -0.528356548356072,
		-0.0011468411281056, -0.247403365104863, -0.173244596298342,
		-0.31896661356706, -0.495949992690565, 0.119019921263658,
		0.540342927427076, 0.0638667163600597, -0.230528057130856,
		-0.0812576791473448, 0.220628761105426, -0.094064900230779,
		-0.356495790156264, -0.619623030545132, 0.115589733403062,
	},
	{
		0.0132468525879893, -0.8765998536722, -0.0504484159893567,
		-0.0875696222338695, 0.14491726483506, 0.824400659292996,
		-0.0540479238588384, 0.114440890673349, -0.0399914698933143,
		0.434656030198463, -0.0813723658678813, 0.506847861718848,
		1.04015897258299, -0.442118783084938, -0.286290892457978,
		0.230899782977093, -0.0823541762175492, -0.533528238115198,
	},
}

var outputWeight = [hiddenCount]float64{
	-0.726008728459171, -0.896119899552364, 1.30389828749079,
	-0.963599520641712, 0.892304171343111, -1.10949608479192,
	1.32045676281565, -0.881510511623027, 1.19732970053209,
	-1.1976418523188, -0.836429746366561, -0.853341101811818,
	1.69729115635384,
}

const (
	outputBias   = 0.319619509557245
	outputGain   = 0.0111758422535829
	outputOffset = 44.2451801385399
)
