package allometry

// PacificNorthwest is the urban tree coefficient table for the Pacific
// Northwest region: 28 species keyed by USDA PLANTS code. Variables are
// dbh (cm), cdia (crown diameter, m), age (years), crown dia (m), crown ht
// (m), leaf area (m^2) and tree ht (m).
//
// The Washingtonia robusta dbh -> tree ht row is published as a quartic
// with four coefficients; it is carried here as the cubic those
// coefficients describe.
var PacificNorthwest = []Record{
	{Species: "ACMA", Name: "Acer macrophyllum", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.57316, 0.51132, 0.00191}},
	{Species: "ACMA", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.2992, 1.76512, 0.55846, -0.01836}},
	{Species: "ACMA", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.39369, 0.24616, -0.00081}},
	{Species: "ACMA", Independent: "dbh", Dependent: "crown ht", Form: "loglogw1", Coefficients: []float64{0.28858, 1.74158, 0.03472}},
	{Species: "ACMA", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.21317, 1.97429, -0.01051, 0.00003}},
	{Species: "ACMA", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-1.54932, 5.67086, 0.32352}},
	{Species: "ACMA", Independent: "dbh", Dependent: "tree ht", Form: "loglogw1", Coefficients: []float64{0.85132, 1.48977, 0.02171}},

	{Species: "ACPL", Name: "Acer platanoides", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.69436, 0.34048, 0.00733, -0.00004}},
	{Species: "ACPL", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.75329, 1.40261, 0.35382, -0.00942}},
	{Species: "ACPL", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.0926, 0.36724, -0.00266, 0.00001}},
	{Species: "ACPL", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{1.83357, 0.23724, -0.00089}},
	{Species: "ACPL", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.85211, 2.4427, -0.02993, 0.00022}},
	{Species: "ACPL", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.65552, 5.15935, 0.25353}},
	{Species: "ACPL", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{2.56416, 0.3118, -0.00127}},

	{Species: "ACRU", Name: "Acer rubrum", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.19481, 0.65916, -0.00084}},
	{Species: "ACRU", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.64872, 1.37806, 0.27303, -0.00666}},
	{Species: "ACRU", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.16933, 0.43289, -0.00526, 0.00003}},
	{Species: "ACRU", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.57374, 0.52078, -0.00953, 0.00007}},
	{Species: "ACRU", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{-0.28784, 1.61264}},
	{Species: "ACRU", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.4824, 4.97236, 0.24582}},
	{Species: "ACRU", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{1.95274, 0.61834, -0.01179, 0.00008}},

	{Species: "ACSA2", Name: "Acer saccharum", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.35741, 0.33851, 0.00463}},
	{Species: "ACSA2", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.33495, 3.17841, 0.28395, -0.0112}},
	{Species: "ACSA2", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{-0.04297, 0.26749, -0.00063}},
	{Species: "ACSA2", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{1.2475, 0.32945, -0.00126}},
	{Species: "ACSA2", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{1.47953, 1.65885, 0.00513, -0.00015}},
	{Species: "ACSA2", Independent: "dbh", Dependent: "leaf area", Form: "loglogw3", Coefficients: []float64{-1.68905, 5.95471, 0.00136}},
	{Species: "ACSA2", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{1.10482, 0.62678, -0.0077, 0.00004}},

	{Species: "BEPE", Name: "Betula pendula", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.39331, 0.52785, 0.00437}},
	{Species: "BEPE", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.82226, 0.2215, 0.8505, -0.04466}},
	{Species: "BEPE", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.35044, 0.37618, -0.00631, 0.00007}},
	{Species: "BEPE", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{1.14308, 0.53014, -0.00455}},
	{Species: "BEPE", Independent: "age", Dependent: "dbh", Form: "quad", Coefficients: []float64{-0.91466, 2.11608, -0.02273}},
	{Species: "BEPE", Independent: "dbh", Dependent: "leaf area", Form: "quad", Coefficients: []float64{-0.05315, 0.15892, 0.2975}},
	{Species: "BEPE", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.42669, 0.70065, -0.00668}},

	{Species: "CABEF", Name: "Carpinus betulus Fastigiata", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{-0.97624, 1.02991, -0.01942, 0.00016}},
	{Species: "CABEF", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{2.31114, 1.4967, 0.03034}},
	{Species: "CABEF", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.124, 0.11118, 0.00861, -0.00015}},
	{Species: "CABEF", Independent: "dbh", Dependent: "crown ht", Form: "loglogw1", Coefficients: []float64{0.21394, 1.66187, 0.02607}},
	{Species: "CABEF", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.99936, 2.16074, -0.08853, 0.00412}},
	{Species: "CABEF", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-3.09187, 6.99008, 0.17664}},
	{Species: "CABEF", Independent: "dbh", Dependent: "tree ht", Form: "loglogw1", Coefficients: []float64{0.68427, 1.47106, 0.01592}},

	{Species: "CADE2", Name: "Calocedrus decurrens", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{-3.92586, 1.19536, -0.01523, 0.00007}},
	{Species: "CADE2", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.3338, -4.50349, 14.53807, -2.22352}},
	{Species: "CADE2", Independent: "dbh", Dependent: "crown dia", Form: "loglogw1", Coefficients: []float64{-0.81693, 1.39977, 0.05206}},
	{Species: "CADE2", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{1.04793, 0.20865, 0.00281, -0.00004}},
	{Species: "CADE2", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{-0.5418, 2.23052}},
	{Species: "CADE2", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-3.08102, 5.42583, 0.12706}},
	{Species: "CADE2", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{-0.43078, 0.46333, -0.00309}},

	{Species: "CRLA80", Name: "Crataegus laevigata", Independent: "dbh", Dependent: "age", Form: "loglogw1", Coefficients: []float64{0.66848, 2.26341, 0.21909}},
	{Species: "CRLA80", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{1.02603, -0.06687, 0.77348, -0.03728}},
	{Species: "CRLA80", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.17454, 0.40208, -0.00444}},
	{Species: "CRLA80", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.93095, 0.25848, -0.0016}},
	{Species: "CRLA80", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.20544, 0.81745, 0.01594, -0.00034}},
	{Species: "CRLA80", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{1.26793, -1.41462, 0.39699, -0.00419}},
	{Species: "CRLA80", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.88852, 0.33423, -0.00252}},

	{Species: "FASYAT", Name: "Fagus sylvatica atropunicea", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{1.00624, 0.24853, 0.0104, -0.0001}},
	{Species: "FASYAT", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.8162, 1.20719, 0.26657, -0.00642}},
	{Species: "FASYAT", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{-0.02818, 0.46803, -0.0055, 0.00003}},
	{Species: "FASYAT", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.241, 0.5817, -0.00797, 0.00005}},
	{Species: "FASYAT", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-2.64454, 3.28563, -0.09364, 0.00158}},
	{Species: "FASYAT", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-1.00002, 5.53664, 0.09336}},
	{Species: "FASYAT", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{0.25817, 0.79152, -0.0123, 0.00007}},

	{Species: "FRLA", Name: "Fraxinus latifolia", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.54234, 0.5756, 0.00247}},
	{Species: "FRLA", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{1.76367, 2.39953, 0.06678}},
	{Species: "FRLA", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.18904, 0.37563, -0.00399, 0.00002}},
	{Species: "FRLA", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.53509, 0.37254, -0.00163}},
	{Species: "FRLA", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-1.63283, 2.29867, -0.02735, 0.00016}},
	{Species: "FRLA", Independent: "dbh", Dependent: "leaf area", Form: "loglogw2", Coefficients: []float64{-1.27832, 5.54199, 0.05757}},
	{Species: "FRLA", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.40753, 0.49125, -0.0026}},

	{Species: "ILOP", Name: "Ilex opaca", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{-7.63703, 3.39474, -0.1696, 0.00288}},
	{Species: "ILOP", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{1.90024, 2.00291, 0.03392}},
	{Species: "ILOP", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.07202, 0.28414, -0.00229}},
	{Species: "ILOP", Independent: "dbh", Dependent: "crown ht", Form: "loglogw1", Coefficients: []float64{-0.77752, 2.29877, 0.05786}},
	{Species: "ILOP", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{2.53924, 0.07682, 0.08877, -0.00172}},
	{Species: "ILOP", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-7.00874, 8.2918, 0.53597}},
	{Species: "ILOP", Independent: "dbh", Dependent: "tree ht", Form: "loglogw1", Coefficients: []float64{-0.07365, 1.89671, 0.06102}},

	{Species: "LIST", Name: "Liquidambar styraciflua", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.75623, 0.27517, 0.01399, -0.00016}},
	{Species: "LIST", Independent: "cdia", Dependent: "dbh", Form: "lin", Coefficients: []float64{-1.81154, 4.27467}},
	{Species: "LIST", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.41201, 0.27728, -0.00101}},
	{Species: "LIST", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.89761, 0.40549, -0.00264}},
	{Species: "LIST", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{2.02364, 1.64102}},
	{Species: "LIST", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{0.61572, -0.63818, 0.47404, -0.00342}},
	{Species: "LIST", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.37134, 0.5091, -0.00376}},

	{Species: "MOAL", Name: "Morus alba", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{-0.84292, 1.65967, -0.0534, 0.00062}},
	{Species: "MOAL", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.69882, 0.38155, 0.30043, -0.00873}},
	{Species: "MOAL", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.403768894, 0.452307942, -0.002497943}},
	{Species: "MOAL", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.69217, 0.33321, -0.00245}},
	{Species: "MOAL", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-4.50256, 4.49267, -0.14464, 0.00188}},
	{Species: "MOAL", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{0.21087, 4.87716, 0.11207}},
	{Species: "MOAL", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.50551, 0.42182, -0.00304}},

	{Species: "PHCA", Name: "Phoenix canariensis", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.807, 1.028, -0.00301}},
	{Species: "PHCA", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{-0.205, 0.897, -0.0212}},
	{Species: "PHCA", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{-12.237, 14.0084, 0.4132, -0.0292}},
	{Species: "PHCA", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{-0.365, 0.453, -0.00235}},

	{Species: "PHDA4", Name: "Phoenix dactylifera", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.01576, 1.002, -0.073, 0.00205}},
	{Species: "PHDA4", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.00664, 0.335, 0.00438, -0.00027}},
	{Species: "PHDA4", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{-0.00432, 2.477, -0.0315, 0.00115}},
	{Species: "PHDA4", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{0, 0.259, 0.00662, -0.00009}},

	{Species: "PICO5", Name: "Pinus contorta var. bolanderi", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{1.04669, -0.1142, 0.03967, -0.00051}},
	{Species: "PICO5", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{1.95606, 2.16085, 0.03133}},
	{Species: "PICO5", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.35277, 0.23532, -0.00137}},
	{Species: "PICO5", Independent: "dbh", Dependent: "crown ht", Form: "lin", Coefficients: []float64{1.54381, 0.16978}},
	{Species: "PICO5", Independent: "age", Dependent: "dbh", Form: "loglogw2", Coefficients: []float64{1.57707, 1.6895, 0.00427}},
	{Species: "PICO5", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.76822, 4.59751, 0.14668}},
	{Species: "PICO5", Independent: "dbh", Dependent: "tree ht", Form: "lin", Coefficients: []float64{1.55686, 0.23113}},

	{Species: "POTR2", Name: "Populus balsamifera subsp. trichocarpa", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{1.49435, -0.11181, 0.1546, -0.00359}},
	{Species: "POTR2", Independent: "cdia", Dependent: "dbh", Form: "lin", Coefficients: []float64{-0.50224, 3.16188}},
	{Species: "POTR2", Independent: "dbh", Dependent: "crown dia", Form: "loglogw1", Coefficients: []float64{0.12163, 1.62583, 0.07523}},
	{Species: "POTR2", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{1.31743, 0.49369, -0.00184}},
	{Species: "POTR2", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.52236, 1.19511, 0.01779, -0.00011}},
	{Species: "POTR2", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.36109, 4.93446, 0.49534}},
	{Species: "POTR2", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.60968, 0.53395, -0.00187}},

	{Species: "PRCEKW", Name: "Prunus cerasifera Thundercloud", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.90691, 0.16681, 0.02458, -0.00026}},
	{Species: "PRCEKW", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{1.61707, 2.40368, 0.04956}},
	{Species: "PRCEKW", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.17605, 0.37473, -0.00359}},
	{Species: "PRCEKW", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{1.13295, 0.25941, -0.00271}},
	{Species: "PRCEKW", Independent: "age", Dependent: "dbh", Form: "quad", Coefficients: []float64{0.78364, 0.88584, -0.00949}},
	{Species: "PRCEKW", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.8793, 4.90311, 0.23211}},
	{Species: "PRCEKW", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.75135, 0.35285, -0.00369}},

	{Species: "PRSE2", Name: "Prunus serrulata", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.55903, 0.81962, -0.00508, 0.00002}},
	{Species: "PRSE2", Independent: "cdia", Dependent: "dbh", Form: "quad", Coefficients: []float64{-2.77143, 7.51392, -0.17692}},
	{Species: "PRSE2", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.40377, 0.45231, -0.0025}},
	{Species: "PRSE2", Independent: "dbh", Dependent: "crown ht", Form: "lin", Coefficients: []float64{1.10845, 0.09734}},
	{Species: "PRSE2", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{-0.65197, 1.81238}},
	{Species: "PRSE2", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-1.93065, 5.12856, 0.74048}},
	{Species: "PRSE2", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{1.54418, 0.31365, -0.00561, 0.00004}},

	{Species: "PSME", Name: "Pseudotsuga menziesii", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.8747, 0.357, 0.00306}},
	{Species: "PSME", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{1.53581, 0.2103, 0.70805, -0.02168}},
	{Species: "PSME", Independent: "dbh", Dependent: "crown dia", Form: "loglogw2", Coefficients: []float64{-0.82603, 2.35246, 0.00584}},
	{Species: "PSME", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.2225, 0.49037, -0.0024}},
	{Species: "PSME", Independent: "age", Dependent: "dbh", Form: "quad", Coefficients: []float64{-1.19688, 2.36185, -0.01267}},
	{Species: "PSME", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-3.15072, 6.98931, 0.57231}},
	{Species: "PSME", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{0.04179, 0.5776, -0.00274}},

	{Species: "PYAN", Name: "Malus angustifolia", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{1.494352444, -0.111810012, 0.154595537, -0.003591378}},
	{Species: "PYAN", Independent: "cdia", Dependent: "dbh", Form: "lin", Coefficients: []float64{-0.145962016, 3.083196595}},
	{Species: "PYAN", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.017297264, 0.489633526, -0.009720787}},
	{Species: "PYAN", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{1.10172, -0.26591, 0.05319, -0.00153}},
	{Species: "PYAN", Independent: "age", Dependent: "dbh", Form: "quad", Coefficients: []float64{0.78363989, 0.885844908, -0.009487773}},
	{Species: "PYAN", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-1.65725, 5.18953, 0.71529}},
	{Species: "PYAN", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{1.67077, 0.07431, 0.03374, -0.00119}},

	{Species: "PYKA", Name: "Pyrus kawakamii", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{-0.73974, 0.56603, 0.01225, -0.00018}},
	{Species: "PYKA", Independent: "cdia", Dependent: "dbh", Form: "lin", Coefficients: []float64{-4.89161, 4.3895}},
	{Species: "PYKA", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.99604, 0.29207, -0.00136}},
	{Species: "PYKA", Independent: "dbh", Dependent: "crown ht", Form: "lin", Coefficients: []float64{1.64501, 0.11198}},
	{Species: "PYKA", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{2.83176, 1.30003}},
	{Species: "PYKA", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.56606, 4.36954, 0.3546}},
	{Species: "PYKA", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{1.81068, 0.32025, -0.00236}},

	{Species: "QUAG", Name: "Quercus agrifolia", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{-0.79896, 0.80279, -0.00169}},
	{Species: "QUAG", Independent: "cdia", Dependent: "dbh", Form: "loglogw1", Coefficients: []float64{1.62756, 2.54237, 0.0562}},
	{Species: "QUAG", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.35867, 0.27404, -0.00079}},
	{Species: "QUAG", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.10736, 0.28514, -0.00312, 0.00001}},
	{Species: "QUAG", Independent: "age", Dependent: "dbh", Form: "lin", Coefficients: []float64{1.55732, 1.48691}},
	{Species: "QUAG", Independent: "dbh", Dependent: "leaf area", Form: "quad", Coefficients: []float64{-2.44397, 2.13252, 0.06884}},
	{Species: "QUAG", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{2.00172, 0.32851, -0.00331, 0.00001}},

	{Species: "QURU", Name: "Quercus rubra", Independent: "dbh", Dependent: "age", Form: "quad", Coefficients: []float64{0.64315, 0.34124, 0.00265}},
	{Species: "QURU", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.69338, 1.08675, 0.26902, -0.0058}},
	{Species: "QURU", Independent: "dbh", Dependent: "crown dia", Form: "loglogw1", Coefficients: []float64{-0.33383, 2.2058, 0.0115}},
	{Species: "QURU", Independent: "dbh", Dependent: "crown ht", Form: "lin", Coefficients: []float64{1.80318, 0.21653}},
	{Species: "QURU", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.12978, 1.83846, 0.02001, -0.00036}},
	{Species: "QURU", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{1.5132, -1.40346, 0.45025, -0.00179}},
	{Species: "QURU", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{4.32011, 0.02074, 0.00596, -0.00004}},

	{Species: "TIAM", Name: "Tilia americana", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.25539, 0.67674, -0.0057, 0.00009}},
	{Species: "TIAM", Independent: "cdia", Dependent: "dbh", Form: "quad", Coefficients: []float64{0.14685, 3.4123, 0.09475}},
	{Species: "TIAM", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.00315, 0.30261, -0.00136}},
	{Species: "TIAM", Independent: "dbh", Dependent: "crown ht", Form: "lin", Coefficients: []float64{1.79973, 0.20395}},
	{Species: "TIAM", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.57558, 1.6899, 0.00442, -0.00016}},
	{Species: "TIAM", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.53808, 5.14273, 0.16444}},
	{Species: "TIAM", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{2.16179, 0.30424, -0.0008}},

	{Species: "TICO", Name: "Tilia cordata", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.77726, 0.4449, 0.00919, -0.00006}},
	{Species: "TICO", Independent: "cdia", Dependent: "dbh", Form: "quad", Coefficients: []float64{0.91801, 2.66134, 0.13245}},
	{Species: "TICO", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{-0.01436, 0.29841, -0.0012}},
	{Species: "TICO", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.85835, 0.37393, -0.00368, 0.00002}},
	{Species: "TICO", Independent: "age", Dependent: "dbh", Form: "cub", Coefficients: []float64{-0.74132, 1.99578, -0.02803, 0.00027}},
	{Species: "TICO", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{0.66057, -0.60429, 0.39734, -0.00279}},
	{Species: "TICO", Independent: "dbh", Dependent: "tree ht", Form: "quad", Coefficients: []float64{2.18773, 0.32224, -0.0011}},

	{Species: "ULAM", Name: "Ulmus americana", Independent: "dbh", Dependent: "age", Form: "cub", Coefficients: []float64{0.90064, 0.34281, 0.00785, -0.00004}},
	{Species: "ULAM", Independent: "cdia", Dependent: "dbh", Form: "cub", Coefficients: []float64{0.11354, 1.14531, 0.31746, -0.0076}},
	{Species: "ULAM", Independent: "dbh", Dependent: "crown dia", Form: "cub", Coefficients: []float64{0.33815, 0.43976, -0.00425, 0.00002}},
	{Species: "ULAM", Independent: "dbh", Dependent: "crown ht", Form: "cub", Coefficients: []float64{0.78744, 0.55014, -0.00515, 0.00002}},
	{Species: "ULAM", Independent: "age", Dependent: "dbh", Form: "quad", Coefficients: []float64{-0.70738, 1.81652, -0.00501}},
	{Species: "ULAM", Independent: "dbh", Dependent: "leaf area", Form: "loglogw1", Coefficients: []float64{-0.52583, 5.28335, 0.13193}},
	{Species: "ULAM", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{1.86129, 0.61188, -0.00496, 0.00002}},

	{Species: "WARO", Name: "Washingtonia robusta", Independent: "dbh", Dependent: "crown dia", Form: "quad", Coefficients: []float64{0.09678, 0.411, -0.00834}},
	{Species: "WARO", Independent: "dbh", Dependent: "crown ht", Form: "quad", Coefficients: []float64{0.115, 0.433, -0.0094}},
	{Species: "WARO", Independent: "dbh", Dependent: "leaf area", Form: "cub", Coefficients: []float64{0.116, 0.09026, 0.22, -0.00547}},
	{Species: "WARO", Independent: "dbh", Dependent: "tree ht", Form: "cub", Coefficients: []float64{-0.163, 0.783, 0.00079, -0.00015}},
}

// NewDefaultRegistry loads PacificNorthwest into a frozen registry.
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := r.Load(PacificNorthwest); err != nil {
		return nil, err
	}
	r.Freeze()
	return r, nil
}
