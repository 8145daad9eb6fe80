package orientation

// nut80Terms is the IAU 1980 nutation series (Wahr 1981). Coefficients are
// in units of 0.1 mas, rates per Julian century.
var nut80Terms = [...]nut80Term{
	// 1-10
	{0, 0, 0, 0, 1, -171996.0, -174.2, 92025.0, 8.9},
	{0, 0, 0, 0, 2, 2062.0, 0.2, -895.0, 0.5},
	{-2, 0, 2, 0, 1, 46.0, 0.0, -24.0, 0.0},
	{2, 0, -2, 0, 0, 11.0, 0.0, 0.0, 0.0},
	{-2, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{1, -1, 0, -1, 0, -3.0, 0.0, 0.0, 0.0},
	{0, -2, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{2, 0, -2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, -2, 2, -13187.0, -1.6, 5736.0, -3.1},
	{0, 1, 0, 0, 0, 1426.0, -3.4, 54.0, -0.1},
	// 11-20
	{0, 1, 2, -2, 2, -517.0, 1.2, 224.0, -0.6},
	{0, -1, 2, -2, 2, 217.0, -0.5, -95.0, 0.3},
	{0, 0, 2, -2, 1, 129.0, 0.1, -70.0, 0.0},
	{2, 0, 0, -2, 0, 48.0, 0.0, 1.0, 0.0},
	{0, 0, 2, -2, 0, -22.0, 0.0, 0.0, 0.0},
	{0, 2, 0, 0, 0, 17.0, -0.1, 0.0, 0.0},
	{0, 1, 0, 0, 1, -15.0, 0.0, 9.0, 0.0},
	{0, 2, 2, -2, 2, -16.0, 0.1, 7.0, 0.0},
	{0, -1, 0, 0, 1, -12.0, 0.0, 6.0, 0.0},
	{-2, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	// 21-30
	{0, -1, 2, -2, 1, -5.0, 0.0, 3.0, 0.0},
	{2, 0, 0, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{0, 1, 2, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{1, 0, 0, -1, 0, -4.0, 0.0, 0.0, 0.0},
	{2, 1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{-1, 0, 0, 1, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	// 31-40
	{0, 0, 2, 0, 2, -2274.0, -0.2, 977.0, -0.5},
	{1, 0, 0, 0, 0, 712.0, 0.1, -7.0, 0.0},
	{0, 0, 2, 0, 1, -386.0, -0.4, 200.0, 0.0},
	{1, 0, 2, 0, 2, -301.0, 0.0, 129.0, -0.1},
	{1, 0, 0, -2, 0, -158.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 0, 2, 123.0, 0.0, -53.0, 0.0},
	{0, 0, 0, 2, 0, 63.0, 0.0, -2.0, 0.0},
	{1, 0, 0, 0, 1, 63.0, 0.1, -33.0, 0.0},
	{-1, 0, 0, 0, 1, -58.0, -0.1, 32.0, 0.0},
	{-1, 0, 2, 2, 2, -59.0, 0.0, 26.0, 0.0},
	// 41-50
	{1, 0, 2, 0, 1, -51.0, 0.0, 27.0, 0.0},
	{0, 0, 2, 2, 2, -38.0, 0.0, 16.0, 0.0},
	{2, 0, 0, 0, 0, 29.0, 0.0, -1.0, 0.0},
	{1, 0, 2, -2, 2, 29.0, 0.0, -12.0, 0.0},
	{2, 0, 2, 0, 2, -31.0, 0.0, 13.0, 0.0},
	{0, 0, 2, 0, 0, 26.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 0, 1, 21.0, 0.0, -10.0, 0.0},
	{-1, 0, 0, 2, 1, 16.0, 0.0, -8.0, 0.0},
	{1, 0, 0, -2, 1, -13.0, 0.0, 7.0, 0.0},
	{-1, 0, 2, 2, 1, -10.0, 0.0, 5.0, 0.0},
	// 51-60
	{1, 1, 0, -2, 0, -7.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 2, 7.0, 0.0, -3.0, 0.0},
	{0, -1, 2, 0, 2, -7.0, 0.0, 3.0, 0.0},
	{1, 0, 2, 2, 2, -8.0, 0.0, 3.0, 0.0},
	{1, 0, 0, 2, 0, 6.0, 0.0, 0.0, 0.0},
	{2, 0, 2, -2, 2, 6.0, 0.0, -3.0, 0.0},
	{0, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	{0, 0, 2, 2, 1, -7.0, 0.0, 3.0, 0.0},
	{1, 0, 2, -2, 1, 6.0, 0.0, -3.0, 0.0},
	{0, 0, 0, -2, 1, -5.0, 0.0, 3.0, 0.0},
	// 61-70
	{1, -1, 0, 0, 0, 5.0, 0.0, 0.0, 0.0},
	{2, 0, 2, 0, 1, -5.0, 0.0, 3.0, 0.0},
	{0, 1, 0, -2, 0, -4.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 0, 0, 4.0, 0.0, 0.0, 0.0},
	{0, 0, 0, 1, 0, -4.0, 0.0, 0.0, 0.0},
	{1, 1, 0, 0, 0, -3.0, 0.0, 0.0, 0.0},
	{1, 0, 2, 0, 0, 3.0, 0.0, 0.0, 0.0},
	{1, -1, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{-1, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{-2, 0, 0, 0, 1, -2.0, 0.0, 1.0, 0.0},
	// 71-80
	{3, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{0, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{1, 1, 2, 0, 2, 2.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{2, 0, 0, 0, 1, 2.0, 0.0, -1.0, 0.0},
	{1, 0, 0, 0, 2, -2.0, 0.0, 1.0, 0.0},
	{3, 0, 0, 0, 0, 2.0, 0.0, 0.0, 0.0},
	{0, 0, 2, 1, 2, 2.0, 0.0, -1.0, 0.0},
	{-1, 0, 0, 0, 2, 1.0, 0.0, -1.0, 0.0},
	{1, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	// 81-90
	{-2, 0, 2, 2, 2, 1.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 4, 2, -2.0, 0.0, 1.0, 0.0},
	{2, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 1, 2, -2, 2, 1.0, 0.0, -1.0, 0.0},
	{1, 0, 2, 2, 1, -1.0, 0.0, 1.0, 0.0},
	{-2, 0, 2, 4, 2, -1.0, 0.0, 1.0, 0.0},
	{-1, 0, 4, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{1, -1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{2, 0, 2, -2, 1, 1.0, 0.0, -1.0, 0.0},
	{2, 0, 2, 2, 2, -1.0, 0.0, 0.0, 0.0},
	// 91-100
	{1, 0, 0, 2, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 4, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{3, 0, 2, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{1, 0, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{-1, -1, 0, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, -1, 2, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	// 101-106
	{0, -1, 2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{1, 1, 0, -2, 1, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{2, 0, 0, 2, 0, 1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, 4, 2, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 1, 0, 1.0, 0.0, 0.0, 0.0},
}

// luniSolarTerms are the leading luni-solar terms of the IAU 2000 nutation
// series (Mathews et al. 2002), in units of 0.1 uas, rates per Julian
// century. The IAU 2000B model is exactly this set.
var luniSolarTerms = [...]luniSolarTerm{
	// 1-10
	{0, 0, 0, 0, 1, -172064161.0, -174666.0, 33386.0, 92052331.0, 9086.0, 15377.0},
	{0, 0, 2, -2, 2, -13170906.0, -1675.0, -13696.0, 5730336.0, -3015.0, -4587.0},
	{0, 0, 2, 0, 2, -2276413.0, -234.0, 2796.0, 978459.0, -485.0, 1374.0},
	{0, 0, 0, 0, 2, 2074554.0, 207.0, -698.0, -897492.0, 470.0, -291.0},
	{0, 1, 0, 0, 0, 1475877.0, -3633.0, 11817.0, 73871.0, -184.0, -1924.0},
	{0, 1, 2, -2, 2, -516821.0, 1226.0, -524.0, 224386.0, -677.0, -174.0},
	{1, 0, 0, 0, 0, 711159.0, 73.0, -872.0, -6750.0, 0.0, 358.0},
	{0, 0, 2, 0, 1, -387298.0, -367.0, 380.0, 200728.0, 18.0, 318.0},
	{1, 0, 2, 0, 2, -301461.0, -36.0, 816.0, 129025.0, -63.0, 367.0},
	{0, -1, 2, -2, 2, 215829.0, -494.0, 111.0, -95929.0, 299.0, 132.0},
	// 11-20
	{0, 0, 2, -2, 1, 128227.0, 137.0, 181.0, -68982.0, -9.0, 39.0},
	{-1, 0, 2, 0, 2, 123457.0, 11.0, 19.0, -53311.0, 32.0, -4.0},
	{-1, 0, 0, 2, 0, 156994.0, 10.0, -168.0, -1235.0, 0.0, 82.0},
	{1, 0, 0, 0, 1, 63110.0, 63.0, 27.0, -33228.0, 0.0, -9.0},
	{-1, 0, 0, 0, 1, -57976.0, -63.0, -189.0, 31429.0, 0.0, -75.0},
	{-1, 0, 2, 2, 2, -59641.0, -11.0, 149.0, 25543.0, -11.0, 66.0},
	{1, 0, 2, 0, 1, -51613.0, -42.0, 129.0, 26366.0, 0.0, 78.0},
	{-2, 0, 2, 0, 1, 45893.0, 50.0, 31.0, -24236.0, -10.0, 20.0},
	{0, 0, 0, 2, 0, 63384.0, 11.0, -150.0, -1220.0, 0.0, 29.0},
	{0, 0, 2, 2, 2, -38571.0, -1.0, 158.0, 16452.0, -11.0, 68.0},
	// 21-30
	{0, -2, 2, -2, 2, 32481.0, 0.0, 0.0, -13870.0, 0.0, 0.0},
	{-2, 0, 0, 2, 0, -47722.0, 0.0, -18.0, 477.0, 0.0, -25.0},
	{2, 0, 2, 0, 2, -31046.0, -1.0, 131.0, 13238.0, -11.0, 59.0},
	{1, 0, 2, -2, 2, 28593.0, 0.0, -1.0, -12338.0, 10.0, -3.0},
	{-1, 0, 2, 0, 1, 20441.0, 21.0, 10.0, -10758.0, 0.0, -3.0},
	{2, 0, 0, 0, 0, 29243.0, 0.0, -74.0, -609.0, 0.0, 13.0},
	{0, 0, 2, 0, 0, 25887.0, 0.0, -66.0, -550.0, 0.0, 11.0},
	{0, 1, 0, 0, 1, -14053.0, -25.0, 79.0, 8551.0, -2.0, -45.0},
	{-1, 0, 0, 2, 1, 15164.0, 10.0, 11.0, -8001.0, 0.0, -1.0},
	{0, 2, 2, -2, 2, -15794.0, 72.0, -16.0, 6850.0, -42.0, -5.0},
	// 31-40
	{0, 0, -2, 2, 0, 21783.0, 0.0, 13.0, -167.0, 0.0, 13.0},
	{1, 0, 0, -2, 1, -12873.0, -10.0, -37.0, 6953.0, 0.0, -14.0},
	{0, -1, 0, 0, 1, -12654.0, 11.0, 63.0, 6415.0, 0.0, 26.0},
	{-1, 0, 2, 2, 1, -10204.0, 0.0, 25.0, 5222.0, 0.0, 15.0},
	{0, 2, 0, 0, 0, 16707.0, -85.0, -10.0, 168.0, -1.0, 10.0},
	{1, 0, 2, 2, 2, -7691.0, 0.0, 44.0, 3268.0, 0.0, 19.0},
	{-2, 0, 2, 0, 0, -11024.0, 0.0, -14.0, 104.0, 0.0, 2.0},
	{0, 1, 2, 0, 2, 7566.0, -21.0, -11.0, -3250.0, 0.0, -5.0},
	{0, 0, 2, 2, 1, -6637.0, -11.0, 25.0, 3353.0, 0.0, 14.0},
	{0, -1, 2, 0, 2, -7141.0, 21.0, 8.0, 3070.0, 0.0, 4.0},
	// 41-50
	{0, 0, 0, 2, 1, -6302.0, -11.0, 2.0, 3272.0, 0.0, 4.0},
	{1, 0, 2, -2, 1, 5800.0, 10.0, 2.0, -3045.0, 0.0, -1.0},
	{2, 0, 2, -2, 2, 6443.0, 0.0, -7.0, -2768.0, 0.0, -4.0},
	{-2, 0, 0, 2, 1, -5774.0, -11.0, -15.0, 3041.0, 0.0, -5.0},
	{2, 0, 2, 0, 1, -5350.0, 0.0, 21.0, 2695.0, 0.0, 12.0},
	{0, -1, 2, -2, 1, -4752.0, -11.0, -3.0, 2719.0, 0.0, -3.0},
	{0, 0, 0, -2, 1, -4940.0, -11.0, -21.0, 2720.0, 0.0, -9.0},
	{-1, -1, 0, 2, 0, 7350.0, 0.0, -8.0, -51.0, 0.0, 4.0},
	{2, 0, 0, -2, 1, 4065.0, 0.0, 6.0, -2206.0, 0.0, 1.0},
	{1, 0, 0, 2, 0, 6579.0, 0.0, -24.0, -199.0, 0.0, 2.0},
	// 51-60
	{0, 1, 2, -2, 1, 3579.0, 0.0, 5.0, -1900.0, 0.0, 1.0},
	{1, -1, 0, 0, 0, 4725.0, 0.0, -6.0, -41.0, 0.0, 3.0},
	{-2, 0, 2, 0, 2, -3075.0, 0.0, -2.0, 1313.0, 0.0, -1.0},
	{3, 0, 2, 0, 2, -2904.0, 0.0, 15.0, 1233.0, 0.0, 7.0},
	{0, -1, 0, 2, 0, 4348.0, 0.0, -10.0, -81.0, 0.0, 2.0},
	{1, -1, 2, 0, 2, -2878.0, 0.0, 8.0, 1232.0, 0.0, 4.0},
	{0, 0, 0, 1, 0, -4230.0, 0.0, 5.0, -20.0, 0.0, -2.0},
	{-1, -1, 2, 2, 2, -2819.0, 0.0, 7.0, 1207.0, 0.0, 3.0},
	{-1, 0, 2, 0, 0, -4056.0, 0.0, 5.0, 40.0, 0.0, -2.0},
	{0, -1, 2, 2, 2, -2647.0, 0.0, 11.0, 1129.0, 0.0, 5.0},
	// 61-70
	{-2, 0, 0, 0, 1, -2294.0, 0.0, -10.0, 1266.0, 0.0, -4.0},
	{1, 1, 2, 0, 2, 2481.0, 0.0, -7.0, -1062.0, 0.0, -3.0},
	{2, 0, 0, 0, 1, 2179.0, 0.0, -2.0, -1129.0, 0.0, -2.0},
	{-1, 1, 0, 1, 0, 3276.0, 0.0, 1.0, -9.0, 0.0, 0.0},
	{1, 1, 0, 0, 0, -3389.0, 0.0, 5.0, 35.0, 0.0, -2.0},
	{1, 0, 2, 0, 0, 3339.0, 0.0, -13.0, -107.0, 0.0, 1.0},
	{-1, 0, 2, -2, 1, -1987.0, 0.0, -6.0, 1073.0, 0.0, -2.0},
	{1, 0, 0, 0, 2, -1981.0, 0.0, 0.0, 854.0, 0.0, 0.0},
	{-1, 0, 0, 1, 0, 4026.0, 0.0, -353.0, -553.0, 0.0, -139.0},
	{0, 0, 2, 1, 2, 1660.0, 0.0, -5.0, -710.0, 0.0, -2.0},
	// 71-77
	{-1, 0, 2, 4, 2, -1521.0, 0.0, 9.0, 647.0, 0.0, 4.0},
	{-1, 1, 0, 1, 1, 1314.0, 0.0, 0.0, -700.0, 0.0, 0.0},
	{0, -2, 2, -2, 1, -1283.0, 0.0, 0.0, 672.0, 0.0, 0.0},
	{1, 0, 2, 2, 1, -1331.0, 0.0, 8.0, 663.0, 0.0, 4.0},
	{-2, 0, 2, 2, 2, 1383.0, 0.0, -2.0, -594.0, 0.0, -2.0},
	{-1, 0, 0, 0, 2, 1405.0, 0.0, 4.0, -610.0, 0.0, 2.0},
	{1, 1, 2, -2, 2, 1290.0, 0.0, 0.0, -556.0, 0.0, 0.0},
}
